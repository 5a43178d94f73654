package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenFormPost
	screenFormCategory
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger
	baseURL  string

	mode          appMode
	currentScreen screen

	welcome      welcomeModel
	login        loginModel
	register     registerModel
	list         listModel
	detail       detailModel
	form         formPostModel
	formCategory formCategoryModel

	// formCategoryReturn is the screen to go back to after the inline
	// category form closes.
	formCategoryReturn screen

	user          models.User
	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	logout        bool
	resultUser    models.User
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices, baseURL string, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		logger:        log,
		baseURL:       baseURL,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, baseURL string, log *logger.Logger, user models.User) appModel {
	m := newLoginAppModel(ctx, services, baseURL, log)
	m.mode = modeMain
	m.user = user
	m.currentScreen = screenList
	m.list.loading = true
	m.list.username = user.Username
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.cmdLoadPosts(), m.cmdLoadCategories(), m.cmdAwaitResult())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeletePost(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.resultUser = msg.user
		return m, tea.Quit
	case postsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.list.posts = msg.posts
		if m.list.idx >= len(m.list.posts) {
			m.list.idx = len(m.list.posts) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case categoriesLoadedMsg:
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.list.categories = msg.categories
		return m, nil
	case refreshDoneMsg:
		m.list.refreshing = false
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
		}
		return m, m.cmdLoadPosts()
	case mutationAcceptedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "Saving..."
		return m, m.cmdLoadPosts()
	case mutationResultMsg:
		cmds := []tea.Cmd{m.cmdLoadPosts(), m.cmdAwaitResult()}
		switch msg.result.State {
		case models.StateCommitted:
			m.list.status = "Saved"
			cmds = append(cmds, cmdClearStatus())
		case models.StateRolledBack:
			m.logger.Warn().Err(msg.result.Err).Str("client_id", msg.result.ClientID).Msg("mutation rolled back")
			m.list.status = ""
			m.showErrorf(errorText(msg.result.Err))
			if m.currentScreen == screenDetail {
				m.currentScreen = screenList
			}
		}
		return m, tea.Batch(cmds...)
	case categoryCreatedMsg:
		m.formCategory.submitting = false
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.list.categories = append(m.list.categories, msg.category)
		m.form.categories = m.list.categories
		m.form.catIdx = len(m.form.categories) - 1
		m.currentScreen = m.formCategoryReturn
		return m, nil
	case copiedMsg:
		m.list.status = "Link copied!"
		m.detail.status = "Link copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenFormPost:
		return m.updateFormPost(msg)
	case screenFormCategory:
		return m.updateFormCategory(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenFormPost:
		body = m.form.View()
	case screenFormCategory:
		body = m.formCategory.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
	m.formCategory.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = cycleFocus(m.login.inputs, m.login.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = cycleFocus(m.login.inputs, m.login.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if username == "" || email == "" || password == "" {
				m.showErrorf("Username, email and password are required")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.User{Username: username, Email: email, Password: password})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.posts)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			post, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{post: post, categoryName: m.list.categoryName(post.Post.CategoryID)}
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.newPost):
			m.form = newFormPostModel(nil, m.list.categories)
			m.currentScreen = screenFormPost
		case key.Matches(msg, keys.edit):
			post, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.form = newFormPostModel(&post, m.list.categories)
			m.currentScreen = screenFormPost
		case key.Matches(msg, keys.delete):
			post, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = post.Post.Title
			m.pendingDelete = post.ClientID
		case key.Matches(msg, keys.copy):
			post, ok := m.list.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdCopyLink(post.Post.Slug)
		case key.Matches(msg, keys.refresh):
			if m.list.refreshing {
				return m, nil
			}
			m.list.refreshing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.refreshing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		post := m.detail.post
		m.form = newFormPostModel(&post, m.list.categories)
		m.currentScreen = screenFormPost
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.post.Post.Title
		m.pendingDelete = m.detail.post.ClientID
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyLink(m.detail.post.Post.Slug)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateFormPost(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.moveFormFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFormFocus(-1)
			return m, nil
		case keyMsg.String() == "ctrl+n":
			m.formCategory = newFormCategoryModel()
			m.formCategoryReturn = screenFormPost
			m.currentScreen = screenFormCategory
			return m, nil
		case keyMsg.String() == "ctrl+s":
			if m.form.submitting {
				return m, nil
			}
			title := strings.TrimSpace(m.form.inputs[formFieldTitle].Value())
			content := strings.TrimSpace(m.form.content.Value())
			if title == "" || content == "" {
				m.showErrorf("Title and content are required")
				return m, nil
			}
			if _, ok := m.form.category(); !ok {
				m.showErrorf("Pick a category, or create one with ctrl+n")
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdatePost(m.form.clientID, m.form.toUpdate(), m.form.imagePath())
			}
			return m, m.cmdCreatePost(m.form.toDraft(), m.form.imagePath())
		}

		if m.form.focus == formFieldCategory {
			switch {
			case key.Matches(keyMsg, keys.left):
				if m.form.catIdx > 0 {
					m.form.catIdx--
				}
				return m, nil
			case key.Matches(keyMsg, keys.right):
				if m.form.catIdx < len(m.form.categories)-1 {
					m.form.catIdx++
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case formFieldContent:
		m.form.content, cmd = m.form.content.Update(msg)
	case formFieldCategory:
		// selector has no text input
	default:
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m appModel) updateFormCategory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.formCategoryReturn
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formCategory.focus = cycleFocus(m.formCategory.inputs, m.formCategory.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formCategory.focus = cycleFocus(m.formCategory.inputs, m.formCategory.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formCategory.submitting {
				return m, nil
			}
			category := m.formCategory.toCategory()
			if category.Name == "" {
				m.showErrorf("Category name is required")
				return m, nil
			}
			m.formCategory.submitting = true
			return m, m.cmdCreateCategory(category)
		}
	}

	var cmd tea.Cmd
	m.formCategory.inputs[m.formCategory.focus], cmd = m.formCategory.inputs[m.formCategory.focus].Update(msg)
	return m, cmd
}

// moveFormFocus moves focus across the post form fields, including the
// category selector and the content textarea which are not plain inputs.
func (m *appModel) moveFormFocus(delta int) {
	switch m.form.focus {
	case formFieldContent:
		m.form.content.Blur()
	case formFieldCategory:
	default:
		m.form.inputs[m.form.focus].Blur()
	}

	m.form.focus = (m.form.focus + delta + formFieldCount) % formFieldCount

	switch m.form.focus {
	case formFieldContent:
		m.form.content.Focus()
	case formFieldCategory:
	default:
		m.form.inputs[m.form.focus].Focus()
	}
}

func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, email, password)
		if err != nil {
			return mutationAcceptedMsg{err: err}
		}
		return authDoneMsg{user: user}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		created, err := auth.Register(ctx, user)
		if err != nil {
			return mutationAcceptedMsg{err: err}
		}
		return authDoneMsg{user: created}
	}
}

func (m appModel) cmdLoadPosts() tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		list, err := posts.List(ctx)
		return postsLoadedMsg{posts: list, err: err}
	}
}

func (m appModel) cmdLoadCategories() tea.Cmd {
	ctx := m.ctx
	categories := m.services.CategoryService
	return func() tea.Msg {
		list, err := categories.List(ctx)
		return categoriesLoadedMsg{categories: list, err: err}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		return refreshDoneMsg{err: posts.Refresh(ctx)}
	}
}

func (m appModel) cmdCreatePost(post models.Post, imagePath string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		image, err := loadImage(imagePath)
		if err != nil {
			return mutationAcceptedMsg{err: err}
		}
		_, err = posts.Create(ctx, post, image)
		return mutationAcceptedMsg{err: err}
	}
}

func (m appModel) cmdUpdatePost(clientID string, update models.PostUpdate, imagePath string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		image, err := loadImage(imagePath)
		if err != nil {
			return mutationAcceptedMsg{err: err}
		}
		return mutationAcceptedMsg{err: posts.Update(ctx, clientID, update, image)}
	}
}

func (m appModel) cmdDeletePost(clientID string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostService
	return func() tea.Msg {
		return mutationAcceptedMsg{err: posts.Delete(ctx, clientID)}
	}
}

func (m appModel) cmdCreateCategory(category models.Category) tea.Cmd {
	ctx := m.ctx
	categories := m.services.CategoryService
	return func() tea.Msg {
		created, err := categories.Create(ctx, category)
		return categoryCreatedMsg{category: created, err: err}
	}
}

// cmdAwaitResult blocks on the post controller's result stream and turns the
// next outcome into a message. Rearmed after every result.
func (m appModel) cmdAwaitResult() tea.Cmd {
	results := m.services.PostService.Results()
	return func() tea.Msg {
		result, ok := <-results
		if !ok {
			return nil
		}
		return mutationResultMsg{result: result}
	}
}

func (m appModel) cmdCopyLink(slug string) tea.Cmd {
	baseURL := m.baseURL
	return func() tea.Msg {
		if slug == "" {
			return mutationAcceptedMsg{err: fmt.Errorf("the post has no link yet, it is still being saved")}
		}
		if err := clipboard.WriteAll(baseURL + "/post/" + slug); err != nil {
			return mutationAcceptedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// loadImage reads the file at path into memory so the upload does not keep a
// file handle open across the background commit.
func loadImage(path string) (*models.ImageUpload, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", path, err)
	}

	return &models.ImageUpload{
		OriginalName: filepath.Base(path),
		Content:      bytes.NewReader(data),
	}, nil
}
