package dataset

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/domain/table"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	tbl := &table.Table{
		Headers: []string{"Name", "Location", "Email"},
		Rows: []table.Row{
			{"Name": "Embassy of Sweden", "Location": "Tehran, Iran", "Email": "a@x.com"},
			{"Name": `Quote "inside"`, "Location": "", "Email": "b@x.com"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Name", "Location", "Email"}, records[0])
	assert.Equal(t, []string{"Embassy of Sweden", "Tehran, Iran", "a@x.com"}, records[1],
		"embedded separators survive the round trip")
	assert.Equal(t, []string{`Quote "inside"`, "", "b@x.com"}, records[2])
}

func TestWriteCSVEmptyTable(t *testing.T) {
	tbl := &table.Table{Headers: []string{"Name", "Email"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	assert.Equal(t, "Name,Email\n", buf.String())
}
