package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"billsense/internal/classifier"
	"billsense/internal/config"
	"billsense/internal/domain"
	"billsense/internal/service"
)

type options struct {
	headerFile  string
	printMatrix bool
	noDebug     bool
	useDefaults bool
	failInvalid bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify extracted document text",
		Long: `Classify extracted document text as MEDICAL_BILL, EOB or INVALID.

Reads the file named by the argument, or stdin when no argument is given.
Thresholds come from BILLSENSE_CLASSIFIER_THRESHOLDS_* unless --defaults is set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.headerFile, "header", "", "file holding document header text to prepend")
	cmd.Flags().BoolVar(&opts.printMatrix, "matrix", false, "print the full classification matrix instead of the result")
	cmd.Flags().BoolVar(&opts.noDebug, "no-debug", false, "omit the _debug block from the result")
	cmd.Flags().BoolVar(&opts.useDefaults, "defaults", false, "ignore configuration and use the built-in thresholds")
	cmd.Flags().BoolVar(&opts.failInvalid, "fail-invalid", false, "exit non-zero when the document cannot be analyzed")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string, opts *options) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	if opts.headerFile != "" {
		header, err := os.ReadFile(opts.headerFile)
		if err != nil {
			return fmt.Errorf("reading header file: %w", err)
		}
		text = service.ComposeText(string(header), text)
	}
	if text == "" {
		return domain.ErrEmptyText
	}

	clf, err := buildClassifier(opts.useDefaults)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	m := clf.BuildMatrix(text)
	if opts.printMatrix {
		if err := enc.Encode(m); err != nil {
			return err
		}
	} else {
		res := classifier.Translate(m)
		if opts.noDebug {
			res.Debug = nil
		}
		if err := enc.Encode(res); err != nil {
			return err
		}
	}

	if opts.failInvalid && m.FinalType == domain.DocumentTypeInvalid {
		return fmt.Errorf("document classified as %s: %s", m.FinalType, m.Reasoning)
	}
	return nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func buildClassifier(useDefaults bool) (*classifier.Classifier, error) {
	if useDefaults {
		return classifier.Default(), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return classifier.New(nil, cfg.Classifier.Thresholds)
}
