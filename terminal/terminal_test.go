package terminal

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-classic/driver"
	"snake-classic/game"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 20, 10
	cfg.Seed = 3
	d, err := driver.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func rowText(screen tcell.Screen, row, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestInputForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want driver.Input
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), driver.Input{Directions: []game.Direction{game.Up}}},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), driver.Input{Directions: []game.Direction{game.Left}}},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), driver.Input{Directions: []game.Direction{game.Up}}},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), driver.Input{Directions: []game.Direction{game.Down}}},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), driver.Input{Directions: []game.Direction{game.Right}}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), driver.Input{Confirm: true}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), driver.Input{Quit: true}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), driver.Input{Quit: true}},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), driver.Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inputForKey(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("inputForKey = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCheckSize(t *testing.T) {
	grid := game.Grid{Width: 20, Height: 10}
	if err := CheckSize(newScreen(t, 42, 13), grid); err != nil {
		t.Errorf("exact fit rejected: %v", err)
	}
	if err := CheckSize(newScreen(t, 41, 13), grid); err == nil {
		t.Error("too narrow accepted")
	}
	if err := CheckSize(newScreen(t, 42, 12), grid); err == nil {
		t.Error("too short accepted")
	}
}

func TestDrawBoard(t *testing.T) {
	screen := newScreen(t, 60, 20)
	d := newDriver(t)
	r := &renderer{screen: screen}

	r.draw(d.State(), d.Stats())

	g := d.State()
	col, row := cellOrigin(g.Head())
	ch, _, style, _ := screen.GetContent(col, row)
	fg, _, _ := style.Decompose()
	if ch != '█' || fg != tcell.ColorPurple {
		t.Errorf("head drawn as %q fg %v", ch, fg)
	}

	col, row = cellOrigin(g.Tail()[0])
	_, _, style, _ = screen.GetContent(col+1, row)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorDarkMagenta {
		t.Errorf("body fg = %v, want dark magenta", fg)
	}

	food, _ := g.Food()
	col, row = cellOrigin(food)
	if ch, _, _, _ := screen.GetContent(col, row); ch != '●' {
		t.Errorf("food drawn as %q", ch)
	}

	if ch, _, _, _ := screen.GetContent(0, 0); ch != '┌' {
		t.Errorf("top-left corner = %q", ch)
	}
	if status := rowText(screen, g.Height()+2, 20); !strings.Contains(status, "Score: 0") {
		t.Errorf("status row = %q", status)
	}
}

func TestDrawGameOver(t *testing.T) {
	screen := newScreen(t, 60, 20)
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.InitialLength = 5
	d, err := driver.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, dir := range []game.Direction{game.Up, game.Left, game.Down} {
		d.Update(cfg.TickInterval, driver.Input{Directions: []game.Direction{dir}})
	}
	if !d.State().GameOver() {
		t.Fatal("round did not end")
	}

	r := &renderer{screen: screen}
	r.draw(d.State(), d.Stats())

	var all strings.Builder
	for row := 0; row < 20; row++ {
		all.WriteString(rowText(screen, row, 60))
		all.WriteByte('\n')
	}
	for _, want := range []string{"Game Over", "Press Enter", "Played: 1"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("overlay missing %q:\n%s", want, all.String())
		}
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := newScreen(t, 10, 5)
	d := newDriver(t)
	r := &renderer{screen: screen}

	r.draw(d.State(), d.Stats())

	if got := rowText(screen, 0, 10); !strings.HasPrefix(got, "terminal") {
		t.Errorf("row 0 = %q, want size error", got)
	}
}

func TestRunForwardsKeysAndQuits(t *testing.T) {
	screen := newScreen(t, 60, 20)
	d := newDriver(t)

	errc := make(chan error, 1)
	go func() {
		errc <- Run(context.Background(), d, screen)
	}()

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after escape")
	}

	if d.State().Direction() != game.Up {
		t.Errorf("direction = %v, want up", d.State().Direction())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 60, 20)
	d := newDriver(t)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- Run(ctx, d, screen)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
