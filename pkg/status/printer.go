package status

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/kareem0o0/patchline/pkg/lines"
	"github.com/kareem0o0/patchline/pkg/patch"
)

// 📢 Printer provides user-friendly feedback about rule outcomes. Everything
// it prints is mirrored to zerolog for debugging.
type Printer struct {
	console io.Writer
	log     zerolog.Logger
}

// 🎯 NewPrinter creates a new printer writing to console
func NewPrinter(ctx context.Context, console io.Writer) *Printer {
	return &Printer{
		console: console,
		log:     *zerolog.Ctx(ctx),
	}
}

// 📝 PatchApplied reports a successful patch on a file
func (p *Printer) PatchApplied(file string, result *patch.Result) {
	detail := fmt.Sprintf("offset %d", result.Offset)
	if result.Remaining > 0 {
		detail = fmt.Sprintf("%s, %d later occurrence(s) untouched", detail, result.Remaining)
	}
	pterm.Success.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "✨"}).Printfln("Patched %s (%s)", file, detail)
	p.log.Info().
		Str("file", file).
		Int("offset", result.Offset).
		Int("remaining", result.Remaining).
		Msg("patched")
}

// ❌ PatchFailed reports a patch that could not be applied
func (p *Printer) PatchFailed(file string, err error) {
	pterm.Error.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "❌"}).Printfln("Failed %s", file)
	p.log.Error().Err(err).Str("file", file).Msg("patch failed")
}

// ⏭ RuleSkipped reports a rule whose glob did not match the target
func (p *Printer) RuleSkipped(file, glob string) {
	pterm.Info.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "⏭"}).Printfln("Skipped %s (glob %q does not match)", file, glob)
	p.log.Debug().Str("file", file).Str("glob", glob).Msg("rule skipped")
}

// 🔍 VerifyRule reports the outcome of a single dry-run verification
func (p *Printer) VerifyRule(file, detail string, ok bool) {
	outcome := RuleApplied
	if !ok {
		outcome = RuleMissing
	}
	fmt.Fprintln(p.console, FormatRule(file, detail, outcome))
	p.log.Info().Str("file", file).Str("detail", detail).Bool("present", ok).Msg("verified")
}

// Window prints a context window, one numbered line per row, with the
// matched line highlighted. Only the line rows go to the console so output
// stays machine-checkable.
func (p *Printer) Window(w *lines.Window) {
	for _, l := range w.Lines {
		text := l.Format()
		if l.Number == w.Match.Number {
			text = color.YellowString(text)
		}
		fmt.Fprintln(p.console, text)
	}
	p.log.Debug().Int("match_line", w.Match.Number).Int("lines", len(w.Lines)).Msg("printed window")
}

// NoMatch prints the fixed no-match notice
func (p *Printer) NoMatch(file, marker string) {
	fmt.Fprintln(p.console, lines.NoMatchNotice)
	p.log.Info().Str("file", file).Str("marker", marker).Msg("no line contains marker")
}

// 📊 Summary reports an overall outcome
func (p *Printer) Summary(description string) {
	pterm.Info.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "📦"}).Println(description)
	p.log.Info().Msg(description)
}

// 🔍 Failed reports a failed command run
func (p *Printer) Failed(description string, err error) {
	pterm.Error.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	pterm.Error.WithWriter(p.console).Println(err)
	p.log.Error().Err(err).Msg(description)
}
