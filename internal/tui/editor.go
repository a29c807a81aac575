package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputMerchantID = iota
	inputMerchantName
	inputProductDescription
	inputMerchantCity
	inputMerchantPhone
	inputMerchantEmail
	inputMerchantURL
	inputAmount

	inputCount
)

const (
	defaultPurchaseAmount = "1.00"
	statusTTL             = 4 * time.Second
	requestTimeout        = 10 * time.Second
)

type editorField struct {
	label string
	// validator field whose messages are shown under the input, empty for
	// inputs without rules
	errKey      string
	placeholder string
	limit       int
}

var editorFields = [inputCount]editorField{
	inputMerchantID:         {"Merchant ID", validators.FieldMerchantID, "6 or 12 digits", 12},
	inputMerchantName:       {"Merchant name", validators.FieldMerchantName, "DBA name", 64},
	inputProductDescription: {"Product description", validators.FieldProductDescription, "", 64},
	inputMerchantCity:       {"Merchant city", "", "", 64},
	inputMerchantPhone:      {"Merchant phone", validators.FieldMerchantPhone, "NNN-NNN-NNNN", 32},
	inputMerchantEmail:      {"Merchant email", validators.FieldMerchantEmail, "", 64},
	inputMerchantURL:        {"Merchant URL", validators.FieldMerchantURL, "", 64},
	inputAmount:             {"Test amount", "", "1.00", 12},
}

type editorModel struct {
	ctx       context.Context
	service   service.ClientDescriptorService
	buildInfo models.AppBuildInfo

	inputs []textinput.Model
	focus  int

	errs   models.FieldErrors
	scheme models.Scheme

	spinner spinner.Model
	busy    bool

	status      string
	statusIsErr bool

	serverVersion string
	showBuildInfo bool
}

func newEditorModel(ctx context.Context, svc service.ClientDescriptorService, buildInfo models.AppBuildInfo, initial models.SoftDescriptor) editorModel {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Prompt = ""
		inputs[i].Placeholder = editorFields[i].placeholder
		inputs[i].CharLimit = editorFields[i].limit
	}

	inputs[inputMerchantID].SetValue(initial.MerchantID)
	inputs[inputMerchantName].SetValue(initial.MerchantName)
	inputs[inputProductDescription].SetValue(initial.ProductDescription)
	inputs[inputMerchantCity].SetValue(initial.MerchantCity)
	inputs[inputMerchantPhone].SetValue(initial.MerchantPhone)
	inputs[inputMerchantEmail].SetValue(initial.MerchantEmail)
	inputs[inputMerchantURL].SetValue(initial.MerchantURL)
	inputs[inputAmount].SetValue(defaultPurchaseAmount)
	inputs[inputMerchantID].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := editorModel{
		ctx:       ctx,
		service:   svc,
		buildInfo: buildInfo,
		inputs:    inputs,
		spinner:   sp,
	}
	m.recheck()
	return m
}

func (m editorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchVersion())
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case versionMsg:
		if msg.err != nil {
			m.setStatus(humanizeError(msg.err), true)
			return m, m.clearStatusLater()
		}
		m.serverVersion = msg.version
		return m, nil

	case submitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus(humanizeError(msg.err), true)
			return m, m.clearStatusLater()
		}
		m.errs = msg.result.Errors
		m.scheme = msg.result.Scheme
		if msg.result.Valid {
			m.setStatus(fmt.Sprintf("Accepted by the server (%s)", msg.result.Scheme), false)
		} else {
			m.setStatus(fmt.Sprintf("Rejected: %d field(s) invalid", msg.result.Errors.Len()), true)
		}
		return m, m.clearStatusLater()

	case purchaseDoneMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.setStatus(humanizeError(msg.err), true)
		case msg.resp.Success:
			m.setStatus("Purchase: "+msg.resp.Message, false)
		default:
			m.setStatus("Purchase declined: "+msg.resp.Message, true)
		}
		return m, m.clearStatusLater()

	case copiedMsg:
		if msg.err != nil {
			m.setStatus("Copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Descriptor JSON copied to clipboard", false)
		}
		return m, m.clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		m.statusIsErr = false
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.back), key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit), key.Matches(msg, keys.back):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.next):
		return m, m.moveFocus(1)
	case key.Matches(msg, keys.prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, keys.reset):
		for i := range m.inputs[:inputAmount] {
			m.inputs[i].Reset()
		}
		m.recheck()
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.copyDescriptor()
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.submit):
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.submit())
	case key.Matches(msg, keys.purchase):
		amount, err := parseAmount(m.inputs[inputAmount].Value())
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, m.clearStatusLater()
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.purchase(amount))
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and re-runs the local
// rules so errors follow every keystroke.
func (m editorModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recheck()
	return m, cmd
}

func (m *editorModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *editorModel) recheck() {
	d := m.descriptor()
	m.errs = m.service.Check(d)
	m.scheme = d.Scheme()
}

func (m *editorModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusIsErr = isErr
}

func (m editorModel) descriptor() models.SoftDescriptor {
	return *models.NewSoftDescriptor(
		m.inputs[inputMerchantID].Value(),
		m.inputs[inputMerchantName].Value(),
		models.SoftDescriptorOptions{
			ProductDescription: m.inputs[inputProductDescription].Value(),
			MerchantCity:       m.inputs[inputMerchantCity].Value(),
			MerchantPhone:      m.inputs[inputMerchantPhone].Value(),
			MerchantURL:        m.inputs[inputMerchantURL].Value(),
			MerchantEmail:      m.inputs[inputMerchantEmail].Value(),
		},
	)
}

func (m editorModel) fetchVersion() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()
		v, err := m.service.ServerVersion(ctx)
		return versionMsg{version: v, err: err}
	}
}

func (m editorModel) submit() tea.Cmd {
	d := m.descriptor()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()
		result, err := m.service.Submit(ctx, d)
		return submitDoneMsg{result: result, err: err}
	}
}

func (m editorModel) purchase(amount int64) tea.Cmd {
	d := m.descriptor()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()
		resp, err := m.service.TestPurchase(ctx, d, amount)
		return purchaseDoneMsg{resp: resp, err: err}
	}
}

func (m editorModel) copyDescriptor() tea.Cmd {
	d := m.descriptor()
	return func() tea.Msg {
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: clipboard.WriteAll(string(b))}
	}
}

func (m editorModel) clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m editorModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Scheme: %s\n\n", m.scheme)

	for i, in := range m.inputs {
		f := editorFields[i]
		label := labelStyle.Render(f.label)
		if i == m.focus {
			label = focusedStyle.Render(labelStyle.Render("> " + f.label))
		}
		b.WriteString(label)
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")

		if f.errKey == "" {
			continue
		}
		for _, msg := range m.errs.On(f.errKey) {
			b.WriteString(errorStyle.Render(fmt.Sprintf("    %s %s", f.errKey, msg)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " talking to the server...")
	case m.status != "" && m.statusIsErr:
		b.WriteString(errorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(okStyle.Render(m.status))
	case m.errs.IsEmpty():
		b.WriteString(okStyle.Render("Descriptor is valid"))
	default:
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d field(s) invalid", m.errs.Len())))
	}

	return renderPage(
		"SOFT DESCRIPTOR",
		b.String(),
		"tab/↑↓: field  enter: validate  ctrl+p: test purchase  ctrl+y: copy  ctrl+r: reset  f2: about  esc: quit",
	)
}
