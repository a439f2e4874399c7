package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martijn/trainhub/internal/core/domain"
)

var extrasCmd = &cobra.Command{
	Use:   "extras",
	Short: "Manage fields kept locally",
	Long:  "Manage client and trainer fields the backend does not store. They are kept in the local database and merged into listings.",
}

var extrasSetClientCmd = &cobra.Command{
	Use:   "set-client <client-id>",
	Short: "Set the local fields of a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		extras := services.Extras.ClientExtras(id)
		if cmd.Flags().Changed("numero-tva") {
			extras.NumeroTVA, _ = cmd.Flags().GetString("numero-tva")
		}
		if cmd.Flags().Changed("raison-sociale") {
			extras.RaisonSociale, _ = cmd.Flags().GetString("raison-sociale")
		}

		if extras == (domain.ClientExtras{}) {
			err = services.Extras.DeleteClientExtras(cmd.Context(), id)
		} else {
			err = services.Extras.SetClientExtras(cmd.Context(), id, extras)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Extras of client %d updated\n", id)
		return nil
	},
}

var extrasSetFormateurCmd = &cobra.Command{
	Use:   "set-formateur <formateur-id>",
	Short: "Set the local fields of a trainer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		extras := services.Extras.FormateurExtras(id)
		if cmd.Flags().Changed("external") {
			extras.IsExternal, _ = cmd.Flags().GetBool("external")
		}
		if cmd.Flags().Changed("societe") {
			extras.SocieteNom, _ = cmd.Flags().GetString("societe")
		}
		if cmd.Flags().Changed("numero-tva") {
			extras.NumeroTVA, _ = cmd.Flags().GetString("numero-tva")
		}

		if extras == (domain.FormateurExtras{}) {
			err = services.Extras.DeleteFormateurExtras(cmd.Context(), id)
		} else {
			err = services.Extras.SetFormateurExtras(cmd.Context(), id, extras)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Extras of formateur %d updated\n", id)
		return nil
	},
}

func init() {
	extrasSetClientCmd.Flags().String("numero-tva", "", "VAT number")
	extrasSetClientCmd.Flags().String("raison-sociale", "", "registered company name")

	extrasSetFormateurCmd.Flags().Bool("external", false, "trainer is a subcontractor")
	extrasSetFormateurCmd.Flags().String("societe", "", "subcontractor company name")
	extrasSetFormateurCmd.Flags().String("numero-tva", "", "VAT number")

	rootCmd.AddCommand(extrasCmd)
	extrasCmd.AddCommand(extrasSetClientCmd)
	extrasCmd.AddCommand(extrasSetFormateurCmd)
}
