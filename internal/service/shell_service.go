package service

import (
	"fmt"

	"github.com/lshigami/SigmaLearn/internal/assistant"
	"github.com/lshigami/SigmaLearn/internal/auth"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/rs/zerolog/log"
)

type View string

const (
	ViewHome      View = "home"
	ViewMCQ       View = "mcq"
	ViewSummarize View = "summarize"
	ViewUpload    View = "upload"
	ViewChatbot   View = "chatbot"
	ViewAnalytics View = "analytics"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ShellState is the chrome around the active feature view.
type ShellState struct {
	View        View
	Theme       Theme
	SidebarOpen bool
}

func defaultShellState() ShellState {
	return ShellState{View: ViewHome, Theme: ThemeLight, SidebarOpen: true}
}

type menuItem struct {
	view          View
	label         string
	requiresLogin bool
}

var menu = []menuItem{
	{ViewHome, "Home", false},
	{ViewMCQ, "MCQ Generator", false},
	{ViewSummarize, "Summarize Text", false},
	{ViewUpload, "Upload PDF", false},
	{ViewChatbot, "Agentic AI", false},
	{ViewAnalytics, "Analytics", true},
}

func findView(v View) (menuItem, bool) {
	for _, item := range menu {
		if item.view == v {
			return item, true
		}
	}
	return menuItem{}, false
}

type ShellService interface {
	View(ws *Workspace, identity auth.Identity) dto.ShellViewDTO
	// Activate mounts view. The view being left loses its state and any
	// result still in flight for it is ignored.
	Activate(ws *Workspace, identity auth.Identity, view string) (dto.ShellViewDTO, error)
	ToggleTheme(ws *Workspace, identity auth.Identity) dto.ShellViewDTO
	ToggleSidebar(ws *Workspace, identity auth.Identity) dto.ShellViewDTO
}

type shellService struct{}

func NewShellService() ShellService {
	return &shellService{}
}

func (s *shellService) View(ws *Workspace, identity auth.Identity) dto.ShellViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return shellView(ws.shell, identity)
}

func (s *shellService) Activate(ws *Workspace, identity auth.Identity, view string) (dto.ShellViewDTO, error) {
	target := View(view)
	if _, ok := findView(target); !ok {
		return s.View(ws, identity), fmt.Errorf("%w: %q", ErrUnknownView, view)
	}

	ws.mu.Lock()
	prev := ws.shell.View
	var dictation *assistant.Dictation
	if prev != target {
		dictation = ws.discard(prev)
		ws.shell.View = target
	}
	out := shellView(ws.shell, identity)
	ws.mu.Unlock()

	if dictation != nil {
		dictation.Cancel()
	}
	if prev != target {
		log.Debug().Str("client_id", ws.id).Str("from", string(prev)).Str("to", string(target)).Msg("View switched")
	}
	return out, nil
}

func (s *shellService) ToggleTheme(ws *Workspace, identity auth.Identity) dto.ShellViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.shell.Theme == ThemeDark {
		ws.shell.Theme = ThemeLight
	} else {
		ws.shell.Theme = ThemeDark
	}
	return shellView(ws.shell, identity)
}

func (s *shellService) ToggleSidebar(ws *Workspace, identity auth.Identity) dto.ShellViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.shell.SidebarOpen = !ws.shell.SidebarOpen
	return shellView(ws.shell, identity)
}

// discard drops the state of the feature behind v and returns a dictation
// to cancel once mu is released. Callers hold mu.
func (w *Workspace) discard(v View) *assistant.Dictation {
	switch v {
	case ViewMCQ:
		w.resetQuiz(QuizTopic)
	case ViewUpload:
		w.resetQuiz(QuizDocument)
	case ViewAnalytics:
		w.resetAnalytics()
	case ViewSummarize:
		w.resetSummary()
	case ViewChatbot:
		return w.resetChat()
	}
	return nil
}

func shellView(st ShellState, identity auth.Identity) dto.ShellViewDTO {
	signedIn := identity != nil && identity.IsSignedIn()
	out := dto.ShellViewDTO{
		View:        string(st.View),
		Theme:       string(st.Theme),
		SidebarOpen: st.SidebarOpen,
		SignedIn:    signedIn,
		Menu:        make([]dto.MenuItemDTO, 0, len(menu)),
	}
	for _, item := range menu {
		out.Menu = append(out.Menu, dto.MenuItemDTO{View: string(item.view), Label: item.label, RequiresLogin: item.requiresLogin})
		if item.view == st.View && item.requiresLogin && !signedIn {
			out.SignInRequired = true
		}
	}
	return out
}
