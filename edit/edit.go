package edit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/revelaction/dragonfly/dict"
)

const (
	actionAdd    = "add"
	actionDelete = "del"
	actionShow   = "show"
	actionQuit   = "quit"

	fieldSep = "|"
)

type command struct {
	action      string
	source      string
	translation string
	typ         string
}

// Handler is an interactive editor of the dictionary of one language.
//
//	add <source> | <translation> | <type>
//	del <source>
//	show <source>
//	quit
type Handler struct {
	Manager *dict.Manager
	Lang    string
	Out     io.Writer

	// current content of the dictionary, for completion
	dict dict.Dict
}

func NewHandler(m *dict.Manager, lang string, out io.Writer) *Handler {
	return &Handler{Manager: m, Lang: lang, Out: out}
}

func (h *Handler) Run() error {
	if err := h.reload(); err != nil {
		return err
	}

	fmt.Fprintf(h.Out, "📚 %s: %d entries. 🔑 Ctrl+L: clear, 🔧 quit\n", h.Lang, len(h.dict))

	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("dragonfly dict "+h.Lang),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if strings.TrimSpace(in) == "" {
			continue
		}
		history = append(history, in)

		cmd, err := parse(in)
		if err != nil {
			fmt.Fprintf(h.Out, "❌ %s\n", err)
			continue
		}

		if cmd.action == actionQuit {
			return nil
		}

		if err := h.exec(cmd); err != nil {
			return err
		}
	}
}

// exec runs cmd. Only storage errors are returned.
func (h *Handler) exec(cmd command) error {
	switch cmd.action {
	case actionAdd:
		e, err := h.Manager.Add(h.Lang, cmd.source, cmd.translation, cmd.typ)
		if err != nil {
			return err
		}
		fmt.Fprintf(h.Out, "✅ %s → %s (%s)\n", strings.ToLower(cmd.source), e.Translation, e.Type)

	case actionDelete:
		ok, err := h.Manager.Delete(h.Lang, cmd.source)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(h.Out, "❌ %s\n", "Entry does not exist.")
			return nil
		}
		fmt.Fprintf(h.Out, "🗑  %s\n", cmd.source)

	case actionShow:
		e, ok := h.dict[strings.ToLower(cmd.source)]
		if !ok {
			fmt.Fprintf(h.Out, "❌ %s\n", "Entry does not exist.")
			return nil
		}
		fmt.Fprintf(h.Out, "📖 %s → %s (%s)\n", strings.ToLower(cmd.source), e.Translation, e.Type)
		return nil
	}

	return h.reload()
}

func (h *Handler) reload() error {
	d, err := h.Manager.Get(h.Lang)
	if err != nil {
		return err
	}
	h.dict = d
	return nil
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.TextBeforeCursor())
	}
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" {
		return s
	}

	action, rest, found := strings.Cut(befCursor, " ")
	if !found {
		for _, a := range []string{actionAdd, actionDelete, actionShow, actionQuit} {
			if strings.HasPrefix(a, action) {
				s = append(s, prompt.Suggest{Text: a})
			}
		}
		return s
	}

	switch action {
	case actionDelete, actionShow:
		if rest == "" {
			return s
		}
		for _, source := range h.dict.Sources() {
			if strings.HasPrefix(source, strings.ToLower(rest)) && len(rest) < len(source) {
				s = append(s, prompt.Suggest{Text: source, Description: h.dict[source].Translation})
			}
		}

	case actionAdd:
		// type is the third field
		fields := strings.Split(rest, fieldSep)
		if len(fields) != 3 {
			return s
		}
		typ := strings.ToUpper(strings.TrimSpace(fields[2]))
		for _, et := range dict.EntityTypes {
			if strings.HasPrefix(et, typ) {
				s = append(s, prompt.Suggest{Text: et})
			}
		}
	}

	return s
}

func parse(in string) (command, error) {
	action, rest, _ := strings.Cut(strings.TrimSpace(in), " ")
	rest = strings.TrimSpace(rest)

	switch action {
	case actionQuit:
		return command{action: actionQuit}, nil

	case actionDelete, actionShow:
		if rest == "" {
			return command{}, errors.New("No source given.")
		}
		return command{action: action, source: rest}, nil

	case actionAdd:
		fields := strings.Split(rest, fieldSep)
		if len(fields) != 3 {
			return command{}, errors.New("Usage: add <source> | <translation> | <type>")
		}
		cmd := command{
			action:      actionAdd,
			source:      strings.TrimSpace(fields[0]),
			translation: strings.TrimSpace(fields[1]),
			typ:         strings.TrimSpace(fields[2]),
		}
		if cmd.source == "" || cmd.translation == "" || cmd.typ == "" {
			return command{}, errors.New("Source, translation and type must not be empty.")
		}
		return cmd, nil
	}

	return command{}, errors.New("Unknown command: " + action + ".")
}
