package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
	"github.com/martijn/trainhub/internal/core/viewmodel"
)

func idString(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func address(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

var sessionColumns = []string{"ID", "TITRE", "DATES", "HORAIRES", "LIEU", "STATUT", "MARGE"}

func sessionRow(s domain.Session) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		s.Titre,
		s.DateLabel(),
		orDash(s.TimeLabel()),
		orDash(s.Lieu),
		orDash(s.Statut),
		s.MarginLabel(),
	}
}

var clientsCmd = newResourceCmd(resourceSpec[*viewmodel.ClientsViewModel, domain.Client, dto.ClientCreate, dto.ClientUpdate]{
	name:  "clients",
	short: "Manage client companies",
	open: func(s *Services) *viewmodel.ClientsViewModel {
		return viewmodel.NewClients(s.API, s.Extras, logger)
	},
	columns: []string{"ID", "INITIALES", "NOM", "VILLE", "CONTACT", "EMAIL"},
	row: func(c domain.Client) []string {
		return []string{
			strconv.FormatInt(c.ID, 10),
			c.Initials(),
			c.DisplayName(),
			c.DisplayCity(),
			orDash(c.ContactNom),
			orDash(c.Email),
		}
	},
	detail: func(c domain.Client) [][2]string {
		return [][2]string{
			{"ID", strconv.FormatInt(c.ID, 10)},
			{"Nom", c.Nom},
			{"Raison sociale", c.RaisonSociale},
			{"Numéro TVA", c.NumeroTVA},
			{"Email", c.Email},
			{"Téléphone", c.Telephone},
			{"Adresse", address(c.FullAddress())},
			{"Ville", c.DisplayCity()},
			{"Contact", c.ContactNom},
			{"Contact email", c.ContactEmail},
			{"Contact téléphone", c.ContactTelephone},
			{"Notes", c.Notes},
		}
	},
	sessions: (*viewmodel.ClientsViewModel).Sessions,
})

var ecolesCmd = newResourceCmd(resourceSpec[*viewmodel.EcolesViewModel, domain.Ecole, dto.EcoleCreate, dto.EcoleUpdate]{
	name:  "ecoles",
	short: "Manage partner schools",
	open: func(s *Services) *viewmodel.EcolesViewModel {
		return viewmodel.NewEcoles(s.API, logger)
	},
	columns: []string{"ID", "INITIALES", "NOM", "VILLE", "CONTACT"},
	row: func(e domain.Ecole) []string {
		return []string{
			strconv.FormatInt(e.ID, 10),
			e.Initials(),
			e.Nom,
			e.DisplayCity(),
			orDash(e.ContactNom),
		}
	},
	detail: func(e domain.Ecole) [][2]string {
		return [][2]string{
			{"ID", strconv.FormatInt(e.ID, 10)},
			{"Nom", e.Nom},
			{"Email", e.Email},
			{"Téléphone", e.Telephone},
			{"Adresse", address(e.FullAddress())},
			{"Ville", e.DisplayCity()},
			{"Contact", e.ContactNom},
			{"Notes", e.Notes},
		}
	},
	sessions: (*viewmodel.EcolesViewModel).Sessions,
})

var formateursCmd = newResourceCmd(resourceSpec[*viewmodel.FormateursViewModel, domain.Formateur, dto.FormateurCreate, dto.FormateurUpdate]{
	name:  "formateurs",
	short: "Manage trainers",
	open: func(s *Services) *viewmodel.FormateursViewModel {
		return viewmodel.NewFormateurs(s.API, s.Extras, logger)
	},
	columns: []string{"ID", "INITIALES", "NOM", "SPECIALITE", "CATEGORIE", "TARIF"},
	row: func(f domain.Formateur) []string {
		return []string{
			strconv.FormatInt(f.ID, 10),
			f.Initials(),
			f.FullName(),
			orDash(f.Specialite),
			string(f.Category()),
			orDash(f.TarifLabel()),
		}
	},
	detail: func(f domain.Formateur) [][2]string {
		return [][2]string{
			{"ID", strconv.FormatInt(f.ID, 10)},
			{"Nom", f.FullName()},
			{"Catégorie", string(f.Category())},
			{"Société", f.SocieteNom},
			{"Numéro TVA", f.NumeroTVA},
			{"Spécialité", f.Specialite},
			{"Tarif", f.TarifLabel()},
			{"Email", f.Email},
			{"Téléphone", f.Telephone},
			{"Adresse", address(f.FullAddress())},
			{"Ville", f.DisplayCity()},
			{"Notes", f.Notes},
		}
	},
	listFlags: func(cmd *cobra.Command) {
		cmd.Flags().String("category", "", "interne or externe")
	},
	applyFilters: func(cmd *cobra.Command, vm *viewmodel.FormateursViewModel) error {
		raw, _ := cmd.Flags().GetString("category")
		category, ok := domain.ParseCategory(raw)
		if !ok {
			return fmt.Errorf("invalid category %q (expected interne or externe)", raw)
		}
		vm.SetCategory(category)
		return nil
	},
	sessions: (*viewmodel.FormateursViewModel).Sessions,
})

var sessionsCmd = newResourceCmd(resourceSpec[*viewmodel.SessionsViewModel, domain.Session, dto.SessionCreate, dto.SessionUpdate]{
	name:  "sessions",
	short: "Manage training sessions",
	open: func(s *Services) *viewmodel.SessionsViewModel {
		return viewmodel.NewSessions(s.API, logger)
	},
	columns: sessionColumns,
	row:     sessionRow,
	detail: func(s domain.Session) [][2]string {
		days := ""
		if n := s.Days(); n > 0 {
			days = strconv.Itoa(n)
		}
		return [][2]string{
			{"ID", strconv.FormatInt(s.ID, 10)},
			{"Titre", s.Titre},
			{"Dates", s.DateLabel()},
			{"Jours", days},
			{"Horaires", s.TimeLabel()},
			{"Lieu", s.Lieu},
			{"Client", idString(s.ClientID)},
			{"École", idString(s.EcoleID)},
			{"Formateur", idString(s.FormateurID)},
			{"Statut", s.Statut},
			{"Marge", s.MarginLabel()},
			{"Notes", s.Notes},
		}
	},
	listFlags: func(cmd *cobra.Command) {
		cmd.Flags().String("month", "", "start month (YYYY-MM)")
		cmd.Flags().String("status", "", "statut")
	},
	applyFilters: func(cmd *cobra.Command, vm *viewmodel.SessionsViewModel) error {
		if raw, _ := cmd.Flags().GetString("month"); raw != "" {
			month, err := domain.ParseMonth(raw)
			if err != nil {
				return err
			}
			vm.SetMonth(month)
		}
		status, _ := cmd.Flags().GetString("status")
		vm.SetStatus(status)
		return nil
	},
})

var usersCmd = newResourceCmd(resourceSpec[*viewmodel.UsersViewModel, domain.User, dto.UserCreate, dto.UserUpdate]{
	name:  "users",
	short: "Manage user accounts",
	open: func(s *Services) *viewmodel.UsersViewModel {
		return viewmodel.NewUsers(s.API, logger)
	},
	columns: []string{"ID", "INITIALES", "NOM", "EMAIL", "ROLE"},
	row: func(u domain.User) []string {
		return []string{
			strconv.FormatInt(u.ID, 10),
			u.Initials(),
			u.DisplayName(),
			u.Email,
			orDash(u.Role),
		}
	},
	detail: func(u domain.User) [][2]string {
		return [][2]string{
			{"ID", strconv.FormatInt(u.ID, 10)},
			{"Nom", u.FullName()},
			{"Email", u.Email},
			{"Rôle", u.Role},
		}
	},
	listFlags: func(cmd *cobra.Command) {
		cmd.Flags().String("role", "", "role")
	},
	applyFilters: func(cmd *cobra.Command, vm *viewmodel.UsersViewModel) error {
		role, _ := cmd.Flags().GetString("role")
		vm.SetRole(role)
		return nil
	},
})

func init() {
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(ecolesCmd)
	rootCmd.AddCommand(formateursCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(usersCmd)
}
