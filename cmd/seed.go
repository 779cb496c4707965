package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/postboard/postboard-backend/config"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/handlers"
	"github.com/postboard/postboard-backend/internal/store/postgres"
	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/services"
	"github.com/postboard/postboard-backend/types"
	"github.com/postboard/postboard-backend/validators"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fixtures is the YAML layout accepted by the seed command.
type fixtures struct {
	Users []userFixture `yaml:"users"`
}

type userFixture struct {
	types.UserCreate `yaml:",inline"`
	Posts            []postFixture `yaml:"posts"`
}

type postFixture struct {
	Title     string  `yaml:"title"`
	Content   *string `yaml:"content,omitempty"`
	Published bool    `yaml:"published"`
}

type seedResult struct {
	Users int
	Posts int
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users and posts from a YAML fixtures file",
		Long: `Load users and posts from a YAML fixtures file. Every record goes through the same
validation and services as the HTTP API, so invalid or duplicate records stop the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open fixtures: %w", err)
			}
			defer f.Close()

			fx, err := parseFixtures(f)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			poolConfig, err := config.NewPoolConfig(&cfg.Database)
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(ctx, poolConfig)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()

			res, err := seed(ctx, fx,
				services.NewUserService(postgres.NewUserStore(pool)),
				services.NewPostService(postgres.NewPostStore(pool)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users and %d posts\n", res.Users, res.Posts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "Fixtures file path")
	return cmd
}

func parseFixtures(r io.Reader) (*fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx fixtures
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &fx, nil
}

// seed creates every user and then that user's posts. It stops at the first failure.
func seed(ctx context.Context, fx *fixtures, users handlers.UserServiceInterface, posts handlers.PostServiceInterface) (seedResult, error) {
	log := logger.GetLogger()
	var res seedResult

	for i, uf := range fx.Users {
		raw, err := json.Marshal(uf.UserCreate)
		if err != nil {
			return res, err
		}
		input, issues := validators.ValidateCreateUser(raw)
		if len(issues) > 0 {
			return res, fixtureError(fmt.Sprintf("users[%d]", i), validators.TransformIssues(issues))
		}

		user, err := users.Create(ctx, input)
		if err != nil {
			return res, fmt.Errorf("users[%d]: %w", i, err)
		}
		res.Users++
		log.Infow("Seeded user", "id", user.ID, "email", logger.MaskEmail(user.Email))

		for j, pf := range uf.Posts {
			path := fmt.Sprintf("users[%d].posts[%d]", i, j)
			raw, err := json.Marshal(types.PostCreate{Title: pf.Title, Content: pf.Content, AuthorID: user.ID})
			if err != nil {
				return res, err
			}
			postInput, issues := validators.ValidateCreatePost(raw)
			if len(issues) > 0 {
				return res, fixtureError(path, validators.TransformIssues(issues))
			}

			post, err := posts.Create(ctx, postInput)
			if err != nil {
				return res, fmt.Errorf("%s: %w", path, err)
			}
			if pf.Published {
				published := true
				if _, err := posts.Update(ctx, post.ID, types.PostUpdate{Published: &published}); err != nil {
					return res, fmt.Errorf("%s: %w", path, err)
				}
			}
			res.Posts++
		}
	}
	return res, nil
}

func fixtureError(path string, details *apperrors.Details) error {
	return fmt.Errorf("%s: %w %v", path, apperrors.ValidationFailed("invalid fixture", details), details.Map())
}
