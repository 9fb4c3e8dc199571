package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"roomgrid/internal/api"
)

func (a *App) roomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List reservable rooms",
		Long: `List all rooms grouped by category.

Pass a room's id to the --room flag (or set default_room_id in the
config) to open its timetable.

Example:
  roomgrid rooms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rooms, categories, err := a.service().ListRooms(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading rooms: %w", err)
			}
			printRooms(os.Stdout, rooms, categories)
			return nil
		},
	}
}

// uncategorizedID is the sentinel the backend uses for rooms outside
// every category.
const uncategorizedID int64 = -1

func printRooms(w io.Writer, rooms []api.Room, categories []api.Category) {
	if len(rooms) == 0 {
		fmt.Fprintln(w, formatMuted("no rooms"))
		return
	}

	byCategory := make(map[int64][]api.Room)
	for _, r := range rooms {
		byCategory[r.CategoryID] = append(byCategory[r.CategoryID], r)
	}
	for _, list := range byCategory {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	rule := strings.Repeat("─", min(termWidth(), 60))
	fmt.Fprintln(w, formatHeader("Rooms"))
	fmt.Fprintln(w, rule)

	printGroup := func(title, description string, list []api.Room) {
		if len(list) == 0 {
			return
		}
		fmt.Fprintln(w, formatCategory(title))
		if description != "" {
			fmt.Fprintf(w, "  %s\n", formatMuted(description))
		}
		for _, r := range list {
			seats := ""
			if r.Seats > 0 {
				seats = formatMuted(fmt.Sprintf("  (%d seats)", r.Seats))
			}
			fmt.Fprintf(w, "  %4d  %s%s\n", r.ID, formatRoom(r.Name), seats)
		}
		fmt.Fprintln(w)
	}

	for _, c := range categories {
		printGroup(c.Name, c.Description, byCategory[c.ID])
	}
	printGroup("Uncategorized", "", byCategory[uncategorizedID])
}
