package app_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mvnrepo/internal/adapters/properties"
	"go.trai.ch/mvnrepo/internal/app"
	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports"
	"go.trai.ch/mvnrepo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestApp_Resolve_Names(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "local.properties"), `maven.repo.myrepo.url=https://a.test/m2
maven.repo.myrepo.username=bob
`)

	ctrl := gomock.NewController(t)
	manifest := mocks.NewMockManifestLoader(ctrl)
	manifest.EXPECT().Load(root).Return(nil, false, nil)

	a := app.New(properties.NewFileReader(), manifest, quietLogger(t))

	configs, err := a.Resolve(context.Background(), app.Invocation{
		RootDir:          root,
		Names:            []string{"myrepo"},
		SystemProperties: []string{"maven.repo.myrepo.password=secret42"},
	})
	require.NoError(t, err)
	require.Len(t, configs, 1)

	cfg := configs[0]
	assert.Equal(t, domain.Some("myrepo"), cfg.Name)
	assert.Equal(t, domain.Some("https://a.test/m2"), cfg.URL.Value)
	assert.Equal(t, domain.Some("bob"), cfg.Username.Value)
	assert.Equal(t, domain.Some("secret42"), cfg.Password.Value)
}

func TestApp_Resolve_SystemOpts(t *testing.T) {
	root := t.TempDir()

	ctrl := gomock.NewController(t)
	manifest := mocks.NewMockManifestLoader(ctrl)
	manifest.EXPECT().Load(root).Return(nil, false, nil)

	a := app.New(properties.NewFileReader(), manifest, quietLogger(t))

	configs, err := a.Resolve(context.Background(), app.Invocation{
		RootDir:          root,
		SystemOpts:       "-Dmaven.repo.url=https://env.test -Dmaven.repo.username=env",
		SystemProperties: []string{"maven.repo.username=flag"},
	})
	require.NoError(t, err)
	require.Len(t, configs, 1)

	assert.False(t, configs[0].Name.IsPresent())
	assert.Equal(t, domain.Some("https://env.test"), configs[0].URL.Value)
	assert.Equal(t, domain.Some("flag"), configs[0].Username.Value)
}

func TestApp_Resolve_Manifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ci.properties"), `maven.repo.releases.url=https://releases.test
maven.repo.url=https://default.test
`)

	ctrl := gomock.NewController(t)
	manifest := mocks.NewMockManifestLoader(ctrl)
	manifest.EXPECT().Load(root).Return(&ports.Manifest{
		DefaultPropertyFile: "ci.properties",
		Repositories: []domain.RepoRequest{
			{Name: domain.Some("releases")},
			{},
		},
	}, true, nil)

	a := app.New(properties.NewFileReader(), manifest, quietLogger(t))

	configs, err := a.Resolve(context.Background(), app.Invocation{RootDir: root})
	require.NoError(t, err)
	require.Len(t, configs, 2)

	assert.Equal(t, domain.Some("https://releases.test"), configs[0].URL.Value)
	assert.Equal(t, domain.Some("https://default.test"), configs[1].URL.Value)
	assert.Equal(t, filepath.Join(root, "ci.properties"), configs[1].PropertyFile)
}

func TestApp_Resolve_ExplicitFileBypassesManifestRepositories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.properties"), "maven.repo.url=https://x.test\n")

	ctrl := gomock.NewController(t)
	manifest := mocks.NewMockManifestLoader(ctrl)
	manifest.EXPECT().Load(root).Return(&ports.Manifest{
		Repositories: []domain.RepoRequest{{Name: domain.Some("a")}, {Name: domain.Some("b")}},
	}, true, nil)

	a := app.New(properties.NewFileReader(), manifest, quietLogger(t))

	configs, err := a.Resolve(context.Background(), app.Invocation{RootDir: root, PropertyFile: "x.properties"})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, domain.Some("https://x.test"), configs[0].URL.Value)
}

func TestApp_Resolve_InvalidInput(t *testing.T) {
	root := t.TempDir()

	ctrl := gomock.NewController(t)
	manifest := mocks.NewMockManifestLoader(ctrl)
	manifest.EXPECT().Load(root).Return(nil, false, nil).Times(2)

	a := app.New(properties.NewFileReader(), manifest, quietLogger(t))

	_, err := a.Resolve(context.Background(), app.Invocation{RootDir: root, Names: []string{"bad name"}})
	require.ErrorIs(t, err, domain.ErrInvalidRepoName)

	_, err = a.Resolve(context.Background(), app.Invocation{RootDir: root, SystemProperties: []string{"=x"}})
	require.ErrorIs(t, err, domain.ErrInvalidSystemProperty)
}

func TestApp_WriteSettings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "local.properties"), `maven.repo.releases.url=https://releases.test
maven.repo.releases.username=bob
maven.repo.releases.password=secret
`)

	ctrl := gomock.NewController(t)
	manifest := mocks.NewMockManifestLoader(ctrl)
	manifest.EXPECT().Load(root).Return(nil, false, nil)

	log := mocks.NewMockLogger(ctrl)
	// Registered first so it takes precedence over the catch-all below.
	log.EXPECT().Warn("Repository left out of settings.xml, it has no URL: missing")
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	a := app.New(properties.NewFileReader(), manifest, log)

	var buf bytes.Buffer
	err := a.WriteSettings(context.Background(), app.Invocation{
		RootDir: root,
		Names:   []string{"releases", "missing"},
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<id>releases</id>")
	assert.Contains(t, out, "<url>https://releases.test</url>")
	assert.Contains(t, out, "<username>bob</username>")
	assert.NotContains(t, out, "<id>missing</id>")
}

func TestApp_ManifestError(t *testing.T) {
	root := t.TempDir()

	ctrl := gomock.NewController(t)
	manifest := mocks.NewMockManifestLoader(ctrl)
	manifest.EXPECT().Load(root).Return(nil, false, domain.ErrInvalidManifest)

	a := app.New(properties.NewFileReader(), manifest, quietLogger(t))

	_, err := a.Resolve(context.Background(), app.Invocation{RootDir: root})
	require.ErrorIs(t, err, domain.ErrInvalidManifest)
}
