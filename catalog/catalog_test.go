package catalog

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/inconshreveable/log15"
	"github.com/ostafen/interval"
	"github.com/ostafen/interval/store"
	"github.com/ostafen/interval/store/badger"
	"github.com/ostafen/interval/store/bbolt"
	"github.com/stretchr/testify/require"
)

func discardLogger() log.Logger {
	logger := log.New()
	logger.SetHandler(log.DiscardHandler())
	return logger
}

func runCatalogTest(t *testing.T, test func(t *testing.T, c *Catalog)) {
	t.Run("bbolt", func(t *testing.T) {
		s, err := bbolt.Open(t.TempDir())
		require.NoError(t, err)
		runWithStore(t, s, test)
	})

	t.Run("badger", func(t *testing.T) {
		s, err := badger.OpenInMemory(badger.WithLogger(discardLogger()))
		require.NoError(t, err)
		runWithStore(t, s, test)
	})
}

func runWithStore(t *testing.T, s store.Store, test func(t *testing.T, c *Catalog)) {
	c, err := Open(s, WithLogger(discardLogger()))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, c.Close())
	}()
	test(t, c)
}

func putAll(t *testing.T, c *Catalog, intervals map[string]string) {
	for name, notation := range intervals {
		_, err := c.Put(name, interval.MustParse(notation))
		require.NoError(t, err)
	}
}

func names(records []*Record) []string {
	s := make([]string, 0, len(records))
	for _, r := range records {
		s = append(s, r.Name)
	}
	return s
}

func TestPutGet(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		before := time.Now()

		record, err := c.Put("unit", interval.Unit)
		require.NoError(t, err)
		require.False(t, record.ID.IsNil())

		stored, err := c.Get("unit")
		require.NoError(t, err)
		require.Equal(t, record.ID, stored.ID)
		require.Equal(t, "unit", stored.Name)
		require.True(t, interval.Unit.Equal(stored.Interval))
		require.WithinDuration(t, before, stored.CreatedAt, time.Minute)

		_, err = c.Get("missing")
		require.ErrorIs(t, err, ErrNotFound)

		_, err = c.Put("", interval.Unit)
		require.ErrorIs(t, err, ErrInvalidName)
	})
}

func TestPutReplaces(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		first, err := c.Put("x", interval.MustParse("[0, 1]"))
		require.NoError(t, err)

		second, err := c.Put("x", interval.MustParse("(5, 6)"))
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		stored, err := c.Get("x")
		require.NoError(t, err)
		require.Equal(t, "(5, 6)", stored.Interval.String())

		records, err := c.List()
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}

func TestDelete(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		putAll(t, c, map[string]string{"a": "[0, 1]", "b": "≥3"})

		require.NoError(t, c.Delete("a"))
		require.ErrorIs(t, c.Delete("a"), ErrNotFound)

		_, err := c.Get("a")
		require.ErrorIs(t, err, ErrNotFound)

		records, err := c.List()
		require.NoError(t, err)
		require.Equal(t, []string{"b"}, names(records))
	})
}

func TestListIsSorted(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		n := 200
		for k := 0; k < n; k++ {
			min := gofakeit.Float64Range(-100, 100)
			i := interval.MustNew(min, min+gofakeit.Float64Range(0, 10), interval.Topology(gofakeit.IntRange(0, 3)))
			_, err := c.Put(fmt.Sprintf("i%d", k), i)
			require.NoError(t, err)
		}

		records, err := c.List()
		require.NoError(t, err)
		require.Len(t, records, n)

		for k := 1; k < len(records); k++ {
			require.LessOrEqual(t, interval.Compare(records[k-1].Interval, records[k].Interval), 0)
		}
	})
}

func TestListBreaksTiesByName(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		putAll(t, c, map[string]string{"c": "[0, 1]", "a": "[0, 1]", "b": "[0, 1]", "z": "(-∞, 0)"})

		records, err := c.List()
		require.NoError(t, err)
		require.Equal(t, []string{"z", "a", "b", "c"}, names(records))
	})
}

func TestContaining(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		putAll(t, c, map[string]string{
			"negative": "<0",
			"unit":     "[0, 1]",
			"open":     "(0, 1)",
			"empty":    "∅",
			"above":    ">1",
			"far":      "[10, 20]",
		})

		records, err := c.Containing(0)
		require.NoError(t, err)
		require.Equal(t, []string{"unit"}, names(records))

		records, err = c.Containing(0.5)
		require.NoError(t, err)
		require.Equal(t, []string{"unit", "open"}, names(records))

		records, err = c.Containing(15)
		require.NoError(t, err)
		require.Equal(t, []string{"above", "far"}, names(records))

		records, err = c.Containing(-5)
		require.NoError(t, err)
		require.Equal(t, []string{"negative"}, names(records))
	})
}

func TestIntersecting(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		putAll(t, c, map[string]string{
			"a": "[0, 2]",
			"b": "(2, 4]",
			"c": "(4, 6)",
			"d": "[6, 8]",
			"e": "∅",
		})

		records, err := c.Intersecting(interval.MustParse("[1, 3]"))
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, names(records))

		// touching at 6, excluded by c and included by d
		records, err = c.Intersecting(interval.MustParse("6"))
		require.NoError(t, err)
		require.Equal(t, []string{"c", "d"}, names(records))

		// touching at 8, included by d
		records, err = c.Intersecting(interval.MustParse("(8, 9)"))
		require.NoError(t, err)
		require.Equal(t, []string{"d"}, names(records))

		records, err = c.Intersecting(interval.MustParse("(9, 10)"))
		require.NoError(t, err)
		require.Empty(t, records)

		records, err = c.Intersecting(interval.MustParse("∅"))
		require.NoError(t, err)
		require.Empty(t, records)
	})
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()

	s, err := bbolt.Open(dir)
	require.NoError(t, err)
	c, err := Open(s, WithLogger(discardLogger()))
	require.NoError(t, err)

	_, err = c.Put("approx", interval.MustParse("≈100"))
	require.NoError(t, err)
	require.NoError(t, c.Close())

	s, err = bbolt.Open(dir)
	require.NoError(t, err)
	c, err = Open(s, WithLogger(discardLogger()))
	require.NoError(t, err)
	defer c.Close()

	record, err := c.Get("approx")
	require.NoError(t, err)
	require.Equal(t, "[95, 105]", record.Interval.String())
}

func TestExportImport(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		var buf bytes.Buffer
		require.NoError(t, c.Export(&buf))
		require.JSONEq(t, "[]", buf.String())

		putAll(t, c, map[string]string{"a": "[0, 1)", "b": "≥5", "c": "∅"})
		records, err := c.List()
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "dump.json")
		require.NoError(t, c.ExportFile(path))

		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, c.Delete(name))
		}

		n, err := c.ImportFile(path)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		imported, err := c.List()
		require.NoError(t, err)
		require.Len(t, imported, len(records))
		for k := range records {
			require.Equal(t, records[k].ID, imported[k].ID)
			require.Equal(t, records[k].Name, imported[k].Name)
			require.True(t, records[k].Interval.Equal(imported[k].Interval))
		}
	})
}

func TestImportReplacesAndValidates(t *testing.T) {
	runCatalogTest(t, func(t *testing.T, c *Catalog) {
		putAll(t, c, map[string]string{"a": "[0, 1)"})

		n, err := c.Import(strings.NewReader(`[{"name": "a", "interval": "(2, 3]"}, {"name": "b", "interval": "<0"}]`))
		require.NoError(t, err)
		require.Equal(t, 2, n)

		records, err := c.List()
		require.NoError(t, err)
		require.Equal(t, []string{"b", "a"}, names(records))
		require.Equal(t, "(2, 3]", records[1].Interval.String())
		require.False(t, records[0].ID.IsNil())

		_, err = c.Import(strings.NewReader(`[{"name": "d", "interval": "[0, 1]"}, {"name": "", "interval": "[0, 1]"}]`))
		require.ErrorIs(t, err, ErrInvalidName)

		_, err = c.Get("d")
		require.ErrorIs(t, err, ErrNotFound)

		_, err = c.Import(strings.NewReader(`[{"name": "e", "interval": "[1, 0]"}]`))
		require.Error(t, err)
	})
}
