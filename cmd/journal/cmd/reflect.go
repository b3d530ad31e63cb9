package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/journal/internal/reveal"
	"github.com/f3rmion/journal/internal/session"
	"github.com/spf13/cobra"
)

var reflectCmd = &cobra.Command{
	Use:   "reflect [entry...]",
	Short: "Reflect on a single entry without the TUI",
	Long: `Send one journal entry to the reflection service and print the
reflection, the affirmation, and any follow-up prompts.

The entry is taken from the arguments, or read from stdin when no
arguments are given.

Example:
  journal reflect "I feel anxious"
  echo "I had a great day" | journal reflect --no-animate`,
	RunE: runReflect,
}

var (
	affirmationLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb923c")).Render("✨ Affirmation:")
	followUpHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316")).Bold(true).Render("Reflect On This")
)

func init() {
	rootCmd.AddCommand(reflectCmd)
	reflectCmd.Flags().Bool("no-animate", false, "print the reflection at once instead of typing it out")
}

func runReflect(cmd *cobra.Command, args []string) error {
	noAnimate, _ := cmd.Flags().GetBool("no-animate")

	entry, err := readEntry(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(entry) == "" {
		return fmt.Errorf("entry is empty")
	}

	deps, err := loadRuntime()
	if err != nil {
		return err
	}
	defer deps.cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seq := reveal.New(deps.cfg.Typing)
	ctrl := session.New(seq, deps.logger.Named("session"))
	ctrl.SetEntry(entry)

	req, ok := ctrl.Submit()
	if !ok {
		return fmt.Errorf("entry is empty")
	}

	res, reqErr := deps.client.SubmitEntry(ctx, req.Entry)
	if _, ok := ctrl.Resolve(req.Seq, res, reqErr); !ok {
		return fmt.Errorf("response for request %d was discarded", req.Seq)
	}

	out := cmd.OutOrStdout()
	printer := &statePrinter{w: out}
	player := reveal.NewPlayer(seq)

	if noAnimate {
		player.Skip(*ctrl.Result(), printer.render)
	} else if err := player.Play(ctx, *ctrl.Result(), printer.render); err != nil {
		fmt.Fprintln(out)
		return err
	}
	fmt.Fprintln(out)

	if reqErr != nil {
		return fmt.Errorf("reflection failed: %w", reqErr)
	}
	return nil
}

// readEntry joins args, or reads all of r when there are none.
func readEntry(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading entry from stdin: %w", err)
	}
	return string(data), nil
}

// statePrinter writes only what changed since the previous reveal state,
// so the output reads like it is being typed.
type statePrinter struct {
	w           io.Writer
	reflection  int
	affirmation int
	followUps   bool
}

func (p *statePrinter) render(s reveal.State) {
	if n := len(s.Reflection); n > p.reflection {
		fmt.Fprint(p.w, s.Reflection[p.reflection:])
		p.reflection = n
	}

	if n := len(s.Affirmation); n > p.affirmation {
		if p.affirmation == 0 {
			fmt.Fprintf(p.w, "\n\n%s ", affirmationLabel)
		}
		fmt.Fprint(p.w, s.Affirmation[p.affirmation:])
		p.affirmation = n
	}

	if len(s.FollowUps) > 0 && !p.followUps {
		p.followUps = true
		fmt.Fprintf(p.w, "\n\n%s\n", followUpHeader)
		for _, f := range s.FollowUps {
			fmt.Fprintf(p.w, "  • %s\n", f)
		}
	}
}
