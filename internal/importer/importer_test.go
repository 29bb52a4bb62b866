package importer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "skolmaten/internal/errors"
	"skolmaten/internal/model"
)

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(`{"2025": {"12": {"Monday": "Soup", "Funday": "Cake"}}}`))
	require.NoError(t, err)
	assert.Equal(t, []model.MenuEntry{{Year: 2025, Week: 12, Weekday: 1, Text: "Soup"}}, entries)
}

func TestParse_OrdersEntries(t *testing.T) {
	doc := `{
		"2026": {"1": {"fri": "e"}},
		"2025": {
			"10": {"Wednesday": "c", "TUESDAY": "b"},
			"9":  {"thu": "a"}
		}
	}`
	entries, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	var texts []string
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	assert.Equal(t, []string{"a", "b", "c", "e"}, texts)
	assert.Equal(t, 2, entries[1].Weekday)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"not json", `nope`, domainerrors.ErrMalformedImport},
		{"wrong shape", `{"2025": ["Soup"]}`, domainerrors.ErrMalformedImport},
		{"year not a number", `{"next": {"1": {"Mon": "x"}}}`, domainerrors.ErrInvalidYear},
		{"week not a number", `{"2025": {"w1": {"Mon": "x"}}}`, domainerrors.ErrInvalidWeek},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWeekdayFromName(t *testing.T) {
	tests := []struct {
		name string
		want int
		ok   bool
	}{
		{"Monday", 1, true},
		{"tue", 2, true},
		{" WEDNESDAY ", 3, true},
		{"Thurs", 4, true},
		{"friday", 5, true},
		{"Saturday", 0, false},
		{"Funday", 0, false},
		{"mo", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeekdayFromName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpener_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"2025": {"1": {"Mon": "Gröt"}}}`), 0o600))

	entries, err := (&Opener{}).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Gröt", entries[0].Text)

	_, err = (&Opener{}).Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestOpener_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"2025": {"12": {"Friday": "Tacos"}}}`)
	}))
	defer srv.Close()

	opener := &Opener{HTTPClient: srv.Client()}

	entries, err := opener.Load(context.Background(), srv.URL+"/menu.json")
	require.NoError(t, err)
	assert.Equal(t, []model.MenuEntry{{Year: 2025, Week: 12, Weekday: 5, Text: "Tacos"}}, entries)

	_, err = opener.Load(context.Background(), srv.URL+"/other.json")
	assert.ErrorContains(t, err, "404")
}

type mockObjectGetter struct {
	mock.Mock
}

func (m *mockObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, *params.Bucket, *params.Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func TestOpener_S3(t *testing.T) {
	getter := new(mockObjectGetter)
	getter.On("GetObject", mock.Anything, "menus", "2025/vt.json").Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(`{"2025": {"3": {"Tue": "Lasagne"}}}`)),
	}, nil)

	opener := &Opener{S3: getter}
	entries, err := opener.Load(context.Background(), "s3://menus/2025/vt.json")
	require.NoError(t, err)
	assert.Equal(t, []model.MenuEntry{{Year: 2025, Week: 3, Weekday: 2, Text: "Lasagne"}}, entries)
	getter.AssertExpectations(t)

	_, err = opener.Open(context.Background(), "s3://menus")
	assert.Error(t, err)

	_, err = (&Opener{}).Open(context.Background(), "s3://menus/a.json")
	assert.Error(t, err)
}

func TestNewOpener_StaticCredentials(t *testing.T) {
	opener, err := NewOpener(context.Background(), S3Config{
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)
	assert.NotNil(t, opener.S3)
	assert.NotNil(t, opener.HTTPClient)
}
