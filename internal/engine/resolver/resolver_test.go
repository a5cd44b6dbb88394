package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mvnrepo/internal/adapters/properties"
	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports/mocks"
	"go.trai.ch/mvnrepo/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func writeProperties(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newResolver(
	t *testing.T,
	root string,
	system map[string]string,
) (*resolver.Resolver, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	r := resolver.New(
		properties.NewFileReader(),
		properties.NewSystem(system),
		log,
		resolver.Config{RootDir: root},
	)
	return r, log
}

func TestResolve_RoundTrip(t *testing.T) {
	root := t.TempDir()
	path := writeProperties(t, root, "local.properties", `maven.repo.x.url=https://x.test/repo
maven.repo.x.username=user
maven.repo.x.password=pass
`)

	r, log := newResolver(t, root, nil)
	log.EXPECT().Info("Configuring Maven repo from property file: " + path)

	cfg, err := r.Resolve(domain.Some("x"), domain.None[string]())
	require.NoError(t, err)

	assert.Equal(t, domain.Some("x"), cfg.Name)
	assert.Equal(t, path, cfg.PropertyFile)
	assert.Equal(t, domain.ResolvedValue{Value: domain.Some("https://x.test/repo"), Source: domain.SourceFile}, cfg.URL)
	assert.Equal(t, domain.ResolvedValue{Value: domain.Some("user"), Source: domain.SourceFile}, cfg.Username)
	assert.Equal(t, domain.ResolvedValue{Value: domain.Some("pass"), Source: domain.SourceFile}, cfg.Password)
}

func TestResolve_SystemPropertyWins(t *testing.T) {
	root := t.TempDir()
	writeProperties(t, root, "local.properties", `maven.repo.url=https://file.test
maven.repo.username=file-user
maven.repo.password=file-pass
`)

	r, log := newResolver(t, root, map[string]string{
		"maven.repo.url": "https://system.test",
	})
	log.EXPECT().Info(gomock.Any())
	log.EXPECT().Warn("Overriding Maven property from file with system property: maven.repo.url")

	cfg, err := r.Resolve(domain.None[string](), domain.None[string]())
	require.NoError(t, err)

	assert.Equal(t, domain.Some("https://system.test"), cfg.URL.Value)
	assert.Equal(t, domain.SourceSystem, cfg.URL.Source)
	assert.Equal(t, domain.Some("file-user"), cfg.Username.Value)
	assert.Equal(t, domain.Some("file-pass"), cfg.Password.Value)
}

func TestResolve_MissingFile(t *testing.T) {
	root := t.TempDir()

	r, log := newResolver(t, root, nil)
	log.EXPECT().Warn("Maven property file not found: " + filepath.Join(root, "absent.properties")).Times(1)

	cfg, err := r.Resolve(domain.None[string](), domain.Some("absent.properties"))
	require.NoError(t, err)

	assert.False(t, cfg.URL.Value.IsPresent())
	assert.False(t, cfg.Username.Value.IsPresent())
	assert.False(t, cfg.Password.Value.IsPresent())
	assert.Equal(t, domain.SourceNone, cfg.URL.Source)
}

func TestResolve_MissingFile_SystemPropertiesStillApply(t *testing.T) {
	r, log := newResolver(t, t.TempDir(), map[string]string{
		"maven.repo.ci.url": "https://ci.test",
	})
	log.EXPECT().Warn(gomock.Any()).Times(2)

	cfg, err := r.Resolve(domain.Some("ci"), domain.None[string]())
	require.NoError(t, err)

	assert.Equal(t, domain.Some("https://ci.test"), cfg.URL.Value)
	assert.False(t, cfg.Username.Value.IsPresent())
}

func TestResolve_MissingKeysAreWarnedIndividually(t *testing.T) {
	root := t.TempDir()
	writeProperties(t, root, "local.properties", "maven.repo.url=https://a.test\n")

	r, log := newResolver(t, root, nil)
	log.EXPECT().Info(gomock.Any())
	log.EXPECT().Warn("Maven repo property unset in property file: maven.repo.username")
	log.EXPECT().Warn("Maven repo property unset in property file: maven.repo.password")

	cfg, err := r.Resolve(domain.None[string](), domain.None[string]())
	require.NoError(t, err)
	assert.Equal(t, domain.Some("https://a.test"), cfg.URL.Value)
}

func TestResolve_MalformedFile(t *testing.T) {
	root := t.TempDir()
	writeProperties(t, root, "local.properties", "maven.repo.url=\\uZZZZ\n")

	r, _ := newResolver(t, root, nil)

	_, err := r.Resolve(domain.None[string](), domain.None[string]())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedPropertyFile)
}

func TestResolve_ExplicitFileRelativeToRoot(t *testing.T) {
	root := t.TempDir()
	path := writeProperties(t, root, filepath.Join("secrets", "repo.properties"), "maven.repo.url=https://a.test\n")

	r, log := newResolver(t, root, nil)
	log.EXPECT().Info("Configuring Maven repo from property file: " + path)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	cfg, err := r.Resolve(domain.None[string](), domain.Some(filepath.Join("secrets", "repo.properties")))
	require.NoError(t, err)
	assert.Equal(t, domain.Some("https://a.test"), cfg.URL.Value)
}

func TestResolve_AbsoluteFileIsKept(t *testing.T) {
	other := t.TempDir()
	path := writeProperties(t, other, "abs.properties", "maven.repo.url=https://abs.test\n")

	r, log := newResolver(t, t.TempDir(), nil)
	log.EXPECT().Info("Configuring Maven repo from property file: " + path)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	cfg, err := r.Resolve(domain.None[string](), domain.Some(path))
	require.NoError(t, err)
	assert.Equal(t, domain.Some("https://abs.test"), cfg.URL.Value)
}

func TestResolve_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeProperties(t, root, "local.properties", `maven.repo.myrepo.url=https://a.test/m2
maven.repo.myrepo.username=bob
`)

	r, log := newResolver(t, root, map[string]string{
		"maven.repo.myrepo.password": "secret42",
	})
	gomock.InOrder(
		log.EXPECT().Info(gomock.Any()),
		log.EXPECT().Warn("Maven repo property unset in property file: maven.repo.myrepo.password"),
		log.EXPECT().Warn("Overriding Maven property from file with system property: maven.repo.myrepo.password"),
	)

	cfg, err := r.Resolve(domain.Some("myrepo"), domain.None[string]())
	require.NoError(t, err)

	assert.Equal(t, domain.Some("myrepo"), cfg.Name)
	assert.Equal(t, domain.Some("https://a.test/m2"), cfg.URL.Value)
	assert.Equal(t, domain.Some("bob"), cfg.Username.Value)
	assert.Equal(t, domain.Some("secret42"), cfg.Password.Value)
	assert.Equal(t, domain.SourceSystem, cfg.Password.Source)
}

func TestPropertyFilePath_Default(t *testing.T) {
	r := resolver.New(nil, nil, nil, resolver.Config{RootDir: "/build"})
	assert.Equal(t, filepath.Join("/build", domain.DefaultPropertyFile), r.PropertyFilePath(domain.None[string]()))

	r = resolver.New(nil, nil, nil, resolver.Config{RootDir: "/build", DefaultPropertyFile: "ci.properties"})
	assert.Equal(t, filepath.Join("/build", "ci.properties"), r.PropertyFilePath(domain.None[string]()))
}
