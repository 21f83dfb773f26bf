package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/domain/srs"
	"github.com/riftbound-tools/riftdrill/internal/session"
)

// handleStudy runs one interactive study session on stdin/stdout.
func (a *app) handleStudy(args []string) {
	size := a.cfg.Study.SessionSize
	for i := 0; i < len(args); i++ {
		if args[i] == "--size" && i+1 < len(args) {
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Invalid --size value: %s\n", args[i+1])
				os.Exit(1)
			}
			size = n
			i++
		}
	}

	active, err := a.svc.StartSession(context.Background(), size)
	if err != nil {
		if errors.Is(err, session.ErrInsufficientCards) {
			fmt.Println("Not enough cards to study right now.")
			fmt.Println("Nothing is due and today's new-card quota is used up,")
			fmt.Println("or the catalog is too small. Try 'riftdrill cap add N'.")
			return
		}
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session started: %d due, %d new.\n",
		active.DueCount(), active.NewCount())
	fmt.Println("Type the card's name. Enter 'q' to stop early.")

	reader := bufio.NewReader(os.Stdin)
	for {
		item, card, ok := active.Current()
		if !ok {
			break
		}
		if item.Rated() {
			active.Advance()
			continue
		}

		pos, total := active.Position()
		fmt.Println()
		fmt.Printf("── Card %d of %d", pos, total)
		if item.IsRelearn {
			fmt.Print("  (again)")
		} else if item.IsNew {
			fmt.Print("  (new)")
		}
		fmt.Println()
		fmt.Printf("   %s %s · %s · %s · %s\n",
			card.SuperType, card.Type, card.SetName, card.Rarity, card.VariantNumber)

		fmt.Print("Name? ")
		start := time.Now()
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			break
		}
		answer := strings.TrimSpace(line)
		if answer == "q" {
			break
		}

		correct, _, err := a.svc.SubmitAnswer(active, answer, time.Since(start))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if correct {
			fmt.Printf("✅ Correct: %s\n", card.Name)
		} else {
			fmt.Printf("❌ It was: %s\n", card.Name)
		}

		quality, ok := a.readRating(reader, correct)
		if !ok {
			break
		}
		if err := a.svc.Rate(active, quality); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		active.Advance()
	}

	summary := active.Summary()
	fmt.Println()
	fmt.Printf("Session over: %d answered, %d correct.\n",
		summary.Answered, summary.Correct)
}

// readRating prompts for a 0-5 recall quality. Empty input defaults to
// 5 after a correct answer and 1 after a miss. Returns false on EOF or
// 'q'.
func (a *app) readRating(reader *bufio.Reader, correct bool) (int, bool) {
	def := 1
	if correct {
		def = srs.MaxQuality
	}
	for {
		fmt.Printf("Recall 0-5 [%d]? ", def)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return 0, false
		}
		input := strings.TrimSpace(line)
		if input == "" {
			return def, true
		}
		if input == "q" {
			return 0, false
		}
		q, err := strconv.Atoi(input)
		if err != nil || q < srs.MinQuality || q > srs.MaxQuality {
			fmt.Println("Enter a number from 0 (blank) to 5 (instant).")
			continue
		}
		return q, true
	}
}

func (a *app) handleStats() {
	due, fresh, err := a.svc.Counts(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	total, err := a.catalog.Count(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	progress := a.svc.DailyProgress()
	fmt.Printf("Catalog:        %d cards\n", total)
	fmt.Printf("Due today:      %d\n", due)
	fmt.Printf("Never studied:  %d\n", fresh)
	fmt.Printf("New taken:      %d of %s today\n",
		progress.NewTaken, formatCap(progress.NewCap))
}

func (a *app) handleCap(args []string) {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		progress := a.svc.DailyProgress()
		fmt.Printf("Today's new-card cap: %s (%d taken)\n",
			formatCap(progress.NewCap), progress.NewTaken)
	case "add":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: riftdrill cap add N")
			os.Exit(1)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Invalid amount: %s\n", args[1])
			os.Exit(1)
		}
		if err := a.svc.ExpandCap(n); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		progress := a.svc.DailyProgress()
		fmt.Printf("Cap raised to %s for today.\n", formatCap(progress.NewCap))
	case "unlimited":
		if err := a.svc.ExpandCapUnlimited(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("New-card cap removed for today.")
	default:
		fmt.Fprintf(os.Stderr, "Unknown cap subcommand: %s\n", sub)
		os.Exit(1)
	}
}

func (a *app) handleReset() {
	fmt.Println("This will erase ALL review progress. The catalog is untouched.")
	fmt.Print("Are you sure? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	input := strings.TrimSpace(strings.ToLower(line))
	if input != "yes" && input != "y" {
		fmt.Println("Cancelled.")
		return
	}

	if err := a.svc.ResetAllProgress(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All review progress erased.")
}

func (a *app) handleImport(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: riftdrill import FILE")
		os.Exit(1)
	}

	count, err := a.catalog.ImportFromJSON(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d card variants.\n", count)
}

func formatCap(cap int) string {
	if cap >= domain.UnlimitedNewCap {
		return "unlimited"
	}
	return strconv.Itoa(cap)
}
