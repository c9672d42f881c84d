package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/lead-prioritizer/internal/industry"
	"github.com/sells-group/lead-prioritizer/internal/normalize"
)

var industryCmd = &cobra.Command{
	Use:   "industry",
	Short: "Classify a company into an industry",
	Long: `Scores a company name (and optionally its email domain) against every
industry category and prints the winning label, the per-category points and
the outreach characteristics for that industry.

Examples:
  lead-prioritizer industry --company "MedCare Solutions" --domain medcare.com
  lead-prioritizer industry --company Acme --email jo@acme.io --yaml`,
	RunE: runIndustry,
}

func init() {
	f := industryCmd.Flags()
	f.String("company", "", "company name (required)")
	f.String("domain", "", "company email domain")
	f.String("email", "", "contact email; its domain is used when --domain is empty")
	f.Bool("yaml", false, "print the result as YAML")
	_ = industryCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(industryCmd)
}

// industryResult is the YAML shape of the industry command.
type industryResult struct {
	Company         string                   `yaml:"company"`
	Domain          string                   `yaml:"domain,omitempty"`
	Industry        string                   `yaml:"industry"`
	Scores          map[string]int           `yaml:"scores"`
	Characteristics industry.Characteristics `yaml:"characteristics"`
}

func runIndustry(cmd *cobra.Command, _ []string) error {
	company, _ := cmd.Flags().GetString("company")
	domain, _ := cmd.Flags().GetString("domain")
	email, _ := cmd.Flags().GetString("email")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	if domain == "" && email != "" {
		domain = normalize.DefaultTables().EmailDomain(email)
	}

	d := industry.NewDetector(nil)
	label := d.Detect(company, domain)
	scores := d.Scores(company, domain)
	traits := industry.CharacteristicsOf(label)

	if asYAML {
		res := industryResult{
			Company:         company,
			Domain:          domain,
			Industry:        label,
			Scores:          make(map[string]int, len(scores)),
			Characteristics: traits,
		}
		for _, s := range scores {
			res.Scores[s.Industry] = s.Points
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return eris.Wrap(err, "industry: encode")
		}
		return eris.Wrap(enc.Close(), "industry: encode")
	}

	fmt.Printf("Company:  %s\n", company)
	if domain != "" {
		fmt.Printf("Domain:   %s\n", domain)
	}
	fmt.Printf("Industry: %s\n", label)

	fmt.Println("\nScores:")
	for _, s := range scores {
		fmt.Printf("  %-15s %d\n", s.Industry, s.Points)
	}

	fmt.Println("\nCharacteristics:")
	fmt.Printf("  %-12s %s\n", "Tone:", traits.Tone)
	fmt.Printf("  %-12s %s\n", "Focus:", strings.Join(traits.FocusAreas, ", "))
	fmt.Printf("  %-12s %s\n", "Pain points:", strings.Join(traits.PainPoints, ", "))
	fmt.Printf("  %-12s %s\n", "Value:", strings.Join(traits.ValueProps, ", "))
	fmt.Printf("  %-12s %s\n", "Terms:", strings.Join(traits.Terminology, ", "))
	return nil
}
