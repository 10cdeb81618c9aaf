package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunocoutinho/prazo/internal/cli/formatter"
	"github.com/brunocoutinho/prazo/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var company, email string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &domain.Client{
				Name:    args[0],
				Company: company,
				Email:   email,
			}
			if err := app.Clients.Create(context.Background(), client); err != nil {
				return err
			}
			fmt.Printf("Created client %s (%s)\n", formatter.ShortID(client.ID), client.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatClientList(clients))
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <client>",
		Short: "Remove a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := resolveClient(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, client.ID); err != nil {
				return err
			}
			fmt.Printf("Removed: %s\n", client.Name)
			return nil
		},
	}
}

// resolveClient matches a client by exact ID, ID prefix, or case-insensitive name.
func resolveClient(ctx context.Context, app *App, ref string) (*domain.Client, error) {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Client
	for _, client := range clients {
		if client.ID == ref || strings.EqualFold(client.Name, ref) {
			return client, nil
		}
		if strings.HasPrefix(client.ID, ref) {
			matches = append(matches, client)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no client matches %q", ref)
	default:
		return nil, fmt.Errorf("%q matches %d clients, be more specific", ref, len(matches))
	}
}
