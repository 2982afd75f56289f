package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/j-vasquez/wrwind/internal/orbit"
	"github.com/j-vasquez/wrwind/internal/wind"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// NewSim builds a fresh simulator, used on start and reset.
type NewSim func() *wind.Simulator

// Model drives a wind simulation frame-by-frame inside the terminal.
type Model struct {
	newSim NewSim
	sim    *wind.Simulator
	cfg    wind.Config
	binary orbit.Binary

	canvas *Canvas
	camera *Camera

	frame       *wind.Frame
	running     bool
	popHistory  []float64
	capHistory  []float64
	totCaptured int

	recording bool
	gifFrames []*image.Paletted
	showHelp  bool
}

// NewModel assembles the live view. The camera starts pole-on.
func NewModel(newSim NewSim, cfg wind.Config, binary orbit.Binary) Model {
	bounds := cfg.BoundsRadius
	if bounds <= 0 {
		bounds = 10
	}
	return Model{
		newSim:     newSim,
		sim:        newSim(),
		cfg:        cfg,
		binary:     binary,
		canvas:     NewCanvas(width, height),
		camera:     NewCamera(bounds),
		running:    true,
		popHistory: make([]float64, 0, historyCapacity),
		capHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "x":
			m.camera.Tilt(0.1)
		case "X":
			m.camera.Tilt(-0.1)
		case "z":
			m.camera.Spin(0.1)
		case "Z":
			m.camera.Spin(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.gifFrames = nil
			} else {
				m.recording = true
				m.gifFrames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	f := m.sim.Step(m.cfg)
	m.frame = f
	m.totCaptured += f.Captured

	m.popHistory = append(m.popHistory, float64(f.Live))
	if len(m.popHistory) > historyCapacity {
		m.popHistory = m.popHistory[1:]
	}
	m.capHistory = append(m.capHistory, float64(f.Captured))
	if len(m.capHistory) > historyCapacity {
		m.capHistory = m.capHistory[1:]
	}
}

func (m *Model) reset() {
	m.sim = m.newSim()
	m.frame = nil
	m.totCaptured = 0
	m.popHistory = m.popHistory[:0]
	m.capHistory = m.capHistory[:0]
}

func (m *Model) draw() {
	m.canvas.Clear()
	if m.frame == nil {
		return
	}

	cloud := m.sim.Cloud()
	DrawCloud(m.canvas, m.camera, cloud.Pos)

	if x, y, ok := m.camera.Project(m.frame.Primary, m.canvas); ok {
		m.canvas.DrawDisk(x, y, 2)
	}
	if x, y, ok := m.camera.Project(m.frame.Companion, m.canvas); ok {
		m.canvas.DrawDisk(x, y, 1)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("WR WIND") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += " [REC]"
	}
	s.WriteString(status + "\n\n")

	if len(m.popHistory) > 1 {
		chart := asciigraph.Plot(m.popHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("particles"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	var t, phase float64
	var live int
	if m.frame != nil {
		t = m.frame.Time
		phase = m.frame.Phase
		live = m.frame.Live
	}
	orbits := phase / (2 * math.Pi)

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3f yr", t)) + "\n")
	s.WriteString(labelStyle.Render("Orbits") + valueStyle.Render(fmt.Sprintf("%.2f", orbits)) + "\n")
	s.WriteString(labelStyle.Render("Period") + valueStyle.Render(fmt.Sprintf("%.4f yr", m.binary.Period())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", live)) + "\n")
	s.WriteString(labelStyle.Render("Captured") + valueStyle.Render(fmt.Sprintf("%d", m.totCaptured)) + "\n")
	s.WriteString(labelStyle.Render("Tilt") + valueStyle.Render(fmt.Sprintf("%.0f°", m.camera.RotX*180/math.Pi)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", m.camera.Zoom)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nX/Z:Tilt/Spin +/-:Zoom\nG:Record ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  X / x    - Tilt camera              ║
║  Z / z    - Spin camera              ║
║  + / -    - Zoom in/out              ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := width*charW, height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r := m.canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.gifFrames = append(m.gifFrames, img)
}

func (m *Model) saveGIF() {
	if len(m.gifFrames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.gifFrames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 3)
	}
	f, err := os.Create("wrwind-live.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
