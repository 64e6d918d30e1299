package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aydenstechdungeon/modalkit/component"
	"github.com/aydenstechdungeon/modalkit/component/modal"
	mtempl "github.com/aydenstechdungeon/modalkit/templ"
	"github.com/aydenstechdungeon/modalkit/term"
)

// Output formats of the render command.
const (
	FormatHTML = "html"
	FormatTerm = "term"
	FormatJSON = "json"
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print modals as HTML or terminal output",
		Long: `Print every modal of --config, or a single modal described by --props or by
flags when no config is given. Closed modals print nothing as html or term;
the json format prints every modal's resolved props.`,
		Example: `  modalkit render -c modals.yaml --format term
  modalkit render --open --closable --title "Delete item?" --footer Delete --size small
  modalkit render --props '{"isOpen":true,"headerTitle":"Hi","hasFooter":true}'`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	flags := cmd.Flags()
	flags.String("format", FormatHTML, "output format: html, term or json")
	flags.Int("width", 0, "terminal width (0 picks it from the size)")
	flags.String("id", "", "only render the modal with this id")
	flags.String("props", "", "modal props as a JSON object")

	flags.Bool("open", false, "render the flag-built modal open")
	flags.Bool("closable", false, "show the header close button")
	flags.String("title", "", "header title")
	flags.String("content", "", "body text")
	flags.String("footer", "", "show a footer button with this label")
	flags.String("size", string(modal.DefaultSize), "size modifier")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	raw, _ := flags.GetString("props")
	var modals []modal.Config
	switch {
	case path != "":
		modals = cfg.ModalConfigs()
	case raw != "":
		props, err := component.PropsFromJSON(raw)
		if err != nil {
			return fmt.Errorf("parsing --props: %w", err)
		}
		modals = []modal.Config{modal.FromProps(props)}
	default:
		modals = []modal.Config{modalFromFlags(cmd)}
	}

	format, _ := flags.GetString("format")
	width, _ := flags.GetInt("width")
	only, _ := flags.GetString("id")

	for _, m := range modals {
		if only != "" && m.ID != only {
			continue
		}
		if err := renderModal(cmd, cmd.OutOrStdout(), m, format, width); err != nil {
			return err
		}
	}
	return nil
}

func modalFromFlags(cmd *cobra.Command) modal.Config {
	flags := cmd.Flags()
	open, _ := flags.GetBool("open")
	closable, _ := flags.GetBool("closable")
	title, _ := flags.GetString("title")
	content, _ := flags.GetString("content")
	size, _ := flags.GetString("size")

	opts := []modal.Option{
		modal.WithOpen(open),
		modal.WithTitle(title),
		modal.WithContent(content),
		modal.WithSize(modal.Size(size)),
	}
	if closable {
		opts = append(opts, modal.Closable())
	}
	if flags.Changed("footer") {
		footer, _ := flags.GetString("footer")
		opts = append(opts, modal.WithFooter(footer))
	}
	return modal.New(opts...)
}

func renderModal(cmd *cobra.Command, w io.Writer, m modal.Config, format string, width int) error {
	switch format {
	case FormatHTML, FormatTerm:
	case FormatJSON:
		out, err := m.Props().ToJSON()
		if err != nil {
			return fmt.Errorf("encoding %s: %w", m.ID, err)
		}
		_, err = fmt.Fprintln(w, out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatHTML, FormatTerm, FormatJSON)
	}
	if !m.Open {
		return nil
	}

	if format == FormatTerm {
		_, err := fmt.Fprintln(w, term.Modal(m, width))
		return err
	}
	out, err := mtempl.String(cmd.Context(), modal.Render(m))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", m.ID, err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
