package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"employee-form/internal/employeeform"
)

func newDesignationsCmd(root *rootOptions) *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "designations [--xlsx FILE]",
		Short: "Показать список должностей формы",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.controller.LoadDesignations(cmd.Context()); err != nil {
				if msg := s.controller.Messages().Current(); msg != nil {
					return fmt.Errorf("%s: %w", msg.Text, err)
				}
				return err
			}
			options := s.controller.Form().Designation.Options

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, o := range options[1:] {
				fmt.Fprintf(w, "%s\t%s\n", o.Value, o.Label)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if xlsxPath == "" {
				return nil
			}
			f, err := employeeform.ExportDesignations(options)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := f.SaveAs(xlsxPath); err != nil {
				return fmt.Errorf("ошибка сохранения %s: %w", xlsxPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Сохранено: %s\n", xlsxPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "сохранить список в Excel-файл")
	return cmd
}
