package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Показать CSRF-токен и источник, из которого он взят",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			token := s.chain.Resolve(cmd.Context())
			if !token.IsSet() {
				return errors.New("CSRF-токен не найден")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", token.Source, token.Value)
			return nil
		},
	}
}
