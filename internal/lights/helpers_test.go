package lights

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
	"github.com/OCharnyshevich/dynlights/internal/gamedata/versions/vanilla"
)

type logBuffer struct {
	bytes.Buffer
}

func (b *logBuffer) warnings() int {
	return strings.Count(b.String(), "level=WARN")
}

func newTestResolver(t *testing.T) (*Resolver, *gamedata.GameData, *logBuffer) {
	t.Helper()
	gd := vanilla.New()
	buf := &logBuffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewResolver(gd, log), gd, buf
}

func item(t *testing.T, gd *gamedata.GameData, name string) gamedata.Item {
	t.Helper()
	it, ok := gd.Items.ByName(name)
	if !ok {
		t.Fatalf("item %s not in test data", name)
	}
	return it
}
