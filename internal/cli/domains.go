// internal/cli/domains.go
package neuroscore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/neuroscore/internal/registry"
)

// domainsCmd implements 'domains', which lists the registered clinical
// domains and how they resolve for the active age group. With an argument it
// resolves that single domain.
var domainsCmd = &cobra.Command{
	Use:   "domains [domain]",
	Short: "List registered domains and their data source bindings",
	Long:  `The 'domains' command lists every domain in the active registry with its phenotype key, data source, report section, and raters, resolved for the active age group. Pass a domain name to resolve just that one.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := loadResolver()
		if err != nil {
			return err
		}
		age := registry.AgeGroup(AgeGroupName())

		if len(args) == 1 {
			resolved, err := resolver.Resolve(args[0], age)
			if err != nil {
				return err
			}
			printResolved(resolved)
			return nil
		}

		names := make([]string, 0, len(resolver.Entries()))
		for _, entry := range resolver.Entries() {
			names = append(names, entry.Domains[0])
		}
		sort.Strings(names)

		headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
		fmt.Println(headerStyle.Render(fmt.Sprintf("Registered domains (%s):", age)))
		for _, name := range names {
			resolved, err := resolver.Resolve(name, age)
			if err != nil {
				return err
			}
			printResolved(resolved)
		}
		return nil
	},
}

func printResolved(resolved registry.Resolved) {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	fmt.Println(nameStyle.Render(fmt.Sprintf("  %s", resolved.Domains[0])))
	fmt.Printf("    pheno: %s\n", resolved.EffectivePheno)
	fmt.Println(sourceStyle.Render(fmt.Sprintf("    source: %s (section %d)", resolved.DataSource, resolved.Section)))
	fmt.Printf("    raters: %s\n", strings.Join(resolved.EffectiveRaters, ", "))
	if len(resolved.Domains) > 1 {
		fmt.Printf("    aliases: %s\n", strings.Join(resolved.Domains[1:], ", "))
	}
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}
