package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nerrad567/rigdesc/internal/auth"
)

type tokenOptions struct {
	*rootOptions
	subject string
	perms   []string
	ttl     time.Duration
}

func newTokenCmd(root *rootOptions) *cobra.Command {
	opts := &tokenOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a service token for the archive API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := issueToken(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.subject, "subject", "", "token subject, e.g. the CI job archiving documents")
	cmd.Flags().StringSliceVar(&opts.perms, "perm", []string{string(auth.PermArchiveWrite)}, "permissions to grant")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "token lifetime (defaults to security.jwt.token_ttl)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func issueToken(opts *tokenOptions) (string, error) {
	cfg, _, err := loadConfig(opts.configPath, true)
	if err != nil {
		return "", err
	}
	ttl := opts.ttl
	if ttl <= 0 {
		ttl = cfg.GetTokenTTL()
	}
	issuer, err := auth.NewIssuer(cfg.Security.JWT.Secret, cfg.Security.JWT.Issuer, ttl)
	if err != nil {
		return "", err
	}

	perms := make([]auth.Permission, 0, len(opts.perms))
	for _, name := range opts.perms {
		p, ok := auth.ParsePermission(name)
		if !ok {
			return "", fmt.Errorf("unknown permission %q", name)
		}
		perms = append(perms, p)
	}
	return issuer.Issue(opts.subject, perms...)
}
