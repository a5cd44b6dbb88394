package app

import (
	"context"
	"net/url"

	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports"
	"go.trai.ch/mvnrepo/internal/engine/registrar"
	"go.trai.ch/mvnrepo/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Action customizes a repository after it has been configured.
type Action func(ports.MavenRepository)

// Project is the build-configuration scope repositories are declared in.
// Its file locations and system properties are fixed at creation. A Project
// is safe for concurrent use as long as its RepositoryHandler is.
type Project struct {
	resolver *resolver.Resolver
	logger   ports.Logger
}

// NewProject creates a Project reading properties through files and system.
func NewProject(
	files ports.PropertyFileReader,
	system ports.SystemProperties,
	logger ports.Logger,
	cfg resolver.Config,
) *Project {
	return &Project{
		resolver: resolver.New(files, system, logger, cfg),
		logger:   logger,
	}
}

// MavenRepo registers the unnamed repository from the default property file.
func (p *Project) MavenRepo(h ports.RepositoryHandler, actions ...Action) (ports.MavenRepository, error) {
	return p.mavenRepo(h, domain.None[string](), domain.None[string](), actions)
}

// MavenRepoFromFile registers the unnamed repository from propertyFile.
func (p *Project) MavenRepoFromFile(
	h ports.RepositoryHandler,
	propertyFile string,
	actions ...Action,
) (ports.MavenRepository, error) {
	return p.mavenRepo(h, domain.None[string](), domain.Some(propertyFile), actions)
}

// NamedMavenRepo registers the repository called name from the default property file.
func (p *Project) NamedMavenRepo(
	h ports.RepositoryHandler,
	name string,
	actions ...Action,
) (ports.MavenRepository, error) {
	return p.mavenRepo(h, domain.Some(name), domain.None[string](), actions)
}

// NamedMavenRepoFromFile registers the repository called name from propertyFile.
func (p *Project) NamedMavenRepoFromFile(
	h ports.RepositoryHandler,
	name string,
	propertyFile string,
	actions ...Action,
) (ports.MavenRepository, error) {
	return p.mavenRepo(h, domain.Some(name), domain.Some(propertyFile), actions)
}

func (p *Project) mavenRepo(
	h ports.RepositoryHandler,
	name domain.Optional[string],
	propertyFile domain.Optional[string],
	actions []Action,
) (ports.MavenRepository, error) {
	cfg, err := p.resolver.Resolve(name, propertyFile)
	if err != nil {
		return nil, err
	}
	return p.register(h, cfg, actions)
}

func (p *Project) register(
	h ports.RepositoryHandler,
	cfg domain.ResolvedRepoConfig,
	actions []Action,
) (ports.MavenRepository, error) {
	repo, err := registrar.Apply(cfg, h, p.logger)
	if err != nil {
		return nil, err
	}
	for _, action := range actions {
		action(repo)
	}
	return repo, nil
}

// Resolve resolves a single request without registering it.
func (p *Project) Resolve(req domain.RepoRequest) (domain.ResolvedRepoConfig, error) {
	return p.resolver.Resolve(req.Name, req.PropertyFile)
}

// ResolveAll resolves every request concurrently. Results keep the order of
// reqs. The first failure cancels the remaining resolutions.
func (p *Project) ResolveAll(ctx context.Context, reqs []domain.RepoRequest) ([]domain.ResolvedRepoConfig, error) {
	results := make([]domain.ResolvedRepoConfig, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg, err := p.Resolve(req)
			if err != nil {
				return zerr.With(err, "repository", req.Name.OrElse("<unnamed>"))
			}
			results[i] = cfg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Configure resolves all requests concurrently and registers them on h in
// request order, so default names are assigned deterministically. Overrides
// declared on a request run as a final Action.
func (p *Project) Configure(
	ctx context.Context,
	h ports.RepositoryHandler,
	reqs []domain.RepoRequest,
) ([]ports.MavenRepository, error) {
	overrides := make([]Action, len(reqs))
	for i, req := range reqs {
		action, err := OverrideAction(req.Overrides)
		if err != nil {
			return nil, zerr.With(err, "repository", req.Name.OrElse("<unnamed>"))
		}
		overrides[i] = action
	}

	configs, err := p.ResolveAll(ctx, reqs)
	if err != nil {
		return nil, err
	}

	repos := make([]ports.MavenRepository, 0, len(configs))
	for i, cfg := range configs {
		var actions []Action
		if overrides[i] != nil {
			actions = append(actions, overrides[i])
		}
		repo, err := p.register(h, cfg, actions)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// OverrideAction returns an Action forcing o's values onto a repository, or
// nil when o is empty. An override URL that does not parse is an error.
func OverrideAction(o domain.RepoOverrides) (Action, error) {
	if o.IsEmpty() {
		return nil, nil
	}

	var repoURL *url.URL
	if raw, ok := o.URL.Get(); ok {
		u, err := registrar.ParseURL(raw)
		if err != nil {
			return nil, err
		}
		repoURL = u
	}

	return func(repo ports.MavenRepository) {
		if repoURL != nil {
			repo.SetURL(repoURL)
		}
		if username, ok := o.Username.Get(); ok {
			repo.Credentials().SetUsername(username)
		}
		if password, ok := o.Password.Get(); ok {
			repo.Credentials().SetPassword(password)
		}
	}, nil
}
