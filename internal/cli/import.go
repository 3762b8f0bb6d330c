package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Import leads from a CSV file",
	Long: `Import leads from a CSV export. Recognized headers (case-insensitive):
Name (or Prospect), Email, Company, UseCase (or AutomationNeed), Budget,
Phone. Rows without an email are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var flagImportQualify bool

func init() {
	importCmd.Flags().BoolVar(&flagImportQualify, "qualify", false, "qualify imported leads immediately")
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if flagImportQualify {
		s := *a.Settings()
		s.AutoQualifyOnImport = true
		a.ApplySettings(s)
	}

	res, err := a.ImportFile(args[0])
	if err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Imported %d leads.", res.Imported)))
	if res.Skipped > 0 {
		fmt.Println(styleHint.Render(fmt.Sprintf("Skipped %d rows without an email.", res.Skipped)))
	}
	if !a.Settings().AutoQualifyOnImport {
		fmt.Println(styleHint.Render("Run 'leadline qualify' to evaluate the new leads."))
	}
	return nil
}
