package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"employee-form/internal/employeeform"
)

type addOptions struct {
	Name        string
	Designation string
}

func newAddCmd(root *rootOptions) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add [--name NAME] [--designation VALUE]",
		Short: "Добавить сотрудника через форму",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			ctrl := s.controller
			ctrl.Messages().OnChange(printMessage(cmd.OutOrStdout()))

			formSession := ctrl.Initialize(cmd.Context())

			name := opts.Name
			if name == "" {
				prompt := promptui.Prompt{Label: "Employee Name"}
				if name, err = prompt.Run(); err != nil {
					return fmt.Errorf("ввод имени: %w", err)
				}
			}
			ctrl.SetEmployeeName(name)

			designation := opts.Designation
			if designation == "" {
				if designation, err = selectDesignation(ctrl.Form().Designation.Options); err != nil {
					return err
				}
			}
			if err := ctrl.SelectDesignation(designation); err != nil {
				return err
			}

			outcome, err := ctrl.Submit(cmd.Context(), formSession)
			if err != nil {
				return err
			}
			if outcome != employeeform.OutcomeAdded {
				return fmt.Errorf("сотрудник не добавлен (%s)", outcome)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "имя сотрудника")
	cmd.Flags().StringVar(&opts.Designation, "designation", "", "значение должности (например, HR-001)")
	return cmd
}

// selectDesignation показывает список без опции по умолчанию и возвращает значение выбранной.
func selectDesignation(options []employeeform.Option) (string, error) {
	var choices []employeeform.Option
	for _, o := range options {
		if o.Value != "" {
			choices = append(choices, o)
		}
	}
	if len(choices) == 0 {
		return "", errors.New("список должностей пуст")
	}

	labels := make([]string, len(choices))
	for i, o := range choices {
		labels[i] = o.Label
	}
	prompt := promptui.Select{Label: employeeform.DefaultOptionLabel, Items: labels}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("выбор должности: %w", err)
	}
	return choices[idx].Value, nil
}

func printMessage(w io.Writer) func(*employeeform.Message) {
	return func(m *employeeform.Message) {
		if m == nil {
			return
		}
		fmt.Fprintf(w, "[%s] %s\n", m.Kind, m.Text)
	}
}
