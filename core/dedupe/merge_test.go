package dedupe

import (
	"encoding/json"
	"testing"

	"lead-consolidator/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_NewestValueWins(t *testing.T) {
	log, logs := observed()
	m := NewMerger("entryDate", log)

	older := lead("_id", 1, "email", "a@x.com", "entryDate", "2020-01-01", "name", "Al")
	newer := lead("_id", 1, "email", "a@x.com", "entryDate", "2021-01-01", "name", "Alice")

	res := m.Merge([]*record.Record{older, newer}, "_id")

	assert.Same(t, older, res.Record, "the oldest record survives")
	assert.True(t, lead("_id", 1, "email", "a@x.com", "entryDate", "2021-01-01", "name", "Alice").Equal(res.Record))
	assert.Equal(t, 2, res.Size)
	assert.Equal(t, "1", res.Value)
	assert.Equal(t, "2020-01-01", res.Oldest)

	require.Len(t, res.Changes, 2)
	assert.Equal(t, FieldChange{Field: "entryDate", Kind: ChangeUpdated, Previous: "2020-01-01", Value: "2021-01-01", Source: "2021-01-01"}, res.Changes[0])
	assert.Equal(t, FieldChange{Field: "name", Kind: ChangeUpdated, Previous: "Al", Value: "Alice", Source: "2021-01-01"}, res.Changes[1])

	assert.Equal(t, 1, logs.FilterMessage("merging duplicate group").Len())
	assert.Equal(t, 2, logs.FilterMessage("field updated").Len())

	announce := logs.FilterMessage("merging duplicate group").All()[0].ContextMap()
	assert.Equal(t, int64(2), announce["size"])
	assert.Equal(t, "_id", announce["key"])
	assert.Equal(t, "2020-01-01", announce["oldest"])
}

func TestMerge_SortsBeforeMerging(t *testing.T) {
	m := NewMerger("entryDate", NopChangeLog())

	newest := lead("_id", 7, "entryDate", "2022-06-01", "city", "Paris")
	oldest := lead("_id", 7, "entryDate", "2019-06-01", "city", "Lyon", "phone", "123")
	middle := lead("_id", 7, "entryDate", "2020-06-01", "city", "Nice")

	res := m.Merge([]*record.Record{newest, oldest, middle}, "_id")

	assert.Same(t, oldest, res.Record)
	city, _ := res.Record.Get("city")
	assert.Equal(t, "Paris", city)
	phone, _ := res.Record.Get("phone")
	assert.Equal(t, "123", phone)
	date, _ := res.Record.Get("entryDate")
	assert.Equal(t, "2022-06-01", date)
}

func TestMerge_OscillatingFieldKeepsLastWrite(t *testing.T) {
	m := NewMerger("entryDate", NopChangeLog())

	res := m.Merge([]*record.Record{
		lead("_id", 1, "entryDate", "2020-01-01", "status", "lead"),
		lead("_id", 1, "entryDate", "2020-02-01", "status", "customer"),
		lead("_id", 1, "entryDate", "2020-03-01", "status", "lead"),
	}, "_id")

	status, _ := res.Record.Get("status")
	assert.Equal(t, "lead", status)

	var statusChanges []FieldChange
	for _, c := range res.Changes {
		if c.Field == "status" {
			statusChanges = append(statusChanges, c)
		}
	}
	require.Len(t, statusChanges, 2)
	assert.Equal(t, "customer", statusChanges[0].Value)
	assert.Equal(t, "lead", statusChanges[1].Value)
}

func TestMerge_UnionOfFieldsAndNulls(t *testing.T) {
	log, logs := observed()
	m := NewMerger("entryDate", log)

	older := lead("_id", 1, "entryDate", "2020-01-01", "phone", "555-0100")
	newer := lead("_id", 1, "entryDate", "2021-01-01", "phone", nil, "company", "Acme", "fax", nil)

	res := m.Merge([]*record.Record{older, newer}, "_id")

	phone, _ := res.Record.Get("phone")
	assert.Equal(t, "555-0100", phone, "a null does not erase a known value")

	company, _ := res.Record.Get("company")
	assert.Equal(t, "Acme", company)

	assert.True(t, res.Record.Has("fax"), "a field only known as null is still carried")
	assert.Equal(t, []string{"_id", "entryDate", "phone", "company", "fax"}, res.Record.Fields())

	assert.Equal(t, 2, logs.FilterMessage("field added").Len())
	assert.Equal(t, 1, logs.FilterMessage("field updated").Len())
}

func TestMerge_SingleRecordIsUntouched(t *testing.T) {
	log, logs := observed()
	m := NewMerger("entryDate", log)

	only := lead("_id", 1, "entryDate", "2020-01-01")
	res := m.Merge([]*record.Record{only}, "_id")

	assert.Same(t, only, res.Record)
	assert.Equal(t, 1, res.Size)
	assert.Empty(t, res.Changes)
	assert.Equal(t, 0, logs.Len())
}

func TestSortByTimestamp(t *testing.T) {
	t.Run("ParsedInstants", func(t *testing.T) {
		a := lead("entryDate", "2021-01-01T10:00:00+02:00") // 08:00Z
		b := lead("entryDate", "2021-01-01T09:00:00Z")
		c := lead("entryDate", float64(1577836800000)) // 2020-01-01

		got := SortByTimestamp([]*record.Record{b, a, c}, "entryDate")
		assert.Equal(t, []*record.Record{c, a, b}, got)
	})

	t.Run("UndatedAfterDated", func(t *testing.T) {
		a := lead("entryDate", "2021-01-01")
		b := lead("entryDate", "unknown")
		c := lead("name", "no date")
		d := lead("entryDate", float64(1577836800000)) // 2020-01-01
		e := lead("entryDate", "also unknown")

		got := SortByTimestamp([]*record.Record{c, b, a, e, d}, "entryDate")
		assert.Equal(t, []*record.Record{d, a, e, b, c}, got)
	})

	t.Run("StableTies", func(t *testing.T) {
		a := lead("n", 1, "entryDate", "2021-01-01")
		b := lead("n", 2, "entryDate", "2021-01-01")

		got := SortByTimestamp([]*record.Record{a, b}, "entryDate")
		assert.Same(t, a, got[0])
		assert.Same(t, b, got[1])
	})

	t.Run("DoesNotReorderInput", func(t *testing.T) {
		a := lead("entryDate", "2022-01-01")
		b := lead("entryDate", "2021-01-01")
		in := []*record.Record{a, b}

		SortByTimestamp(in, "entryDate")
		assert.Same(t, a, in[0])
	})
}

func TestMerge_UndatedRecordDoesNotSurvive(t *testing.T) {
	log, logs := observed()
	m := NewMerger("entryDate", log)

	noDate := lead("_id", 1, "name", "Nobody")
	dated := lead("_id", 1, "name", "Alice", "entryDate", "2020-01-01")

	res := m.Merge([]*record.Record{noDate, dated}, "_id")

	assert.Same(t, dated, res.Record)
	assert.Equal(t, "2020-01-01", res.Oldest)
	v, _ := res.Record.Get("name")
	assert.Equal(t, "Nobody", v, "the undated record is applied last")

	entries := logs.FilterMessage("records without a usable timestamp ordered after dated records").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["count"])
}

func TestMerge_LargeIntegerUpdateIsApplied(t *testing.T) {
	m := NewMerger("entryDate", nil)

	older := lead("_id", 1, "entryDate", "2020-01-01", "account", json.Number("12345678901234567890"))
	newer := lead("_id", 1, "entryDate", "2020-02-01", "account", json.Number("12345678901234567891"))

	res := m.Merge([]*record.Record{older, newer}, "_id")

	v, _ := res.Record.Get("account")
	assert.Equal(t, json.Number("12345678901234567891"), v)
	require.Len(t, res.Changes, 2)
	assert.Equal(t, "account", res.Changes[1].Field)
	assert.Equal(t, ChangeUpdated, res.Changes[1].Kind)
}
