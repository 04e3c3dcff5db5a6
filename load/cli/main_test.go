package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func TestSetupGameCreatesGameAndRoster(t *testing.T) {
	var registered atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games/create":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"game":{"game_id":"g-1"}}`))
		case "/participants/register":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "g-1", body["game_id"])
			registered.Add(1)
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	gameID, err := setupGame(srv.URL, "test-game")
	require.NoError(t, err)
	require.Equal(t, "g-1", gameID)
	require.EqualValues(t, seedParticipants, registered.Load())
}

func TestSetupGameFailsOnConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := setupGame(srv.URL, "test-game")
	require.Error(t, err)
}

func TestRunLoadTestCreatesResultsFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tmpFile := filepath.Join(t.TempDir(), "results.bin")
	prev := resultsFile
	resultsFile = tmpFile
	defer func() { resultsFile = prev }()

	require.NoError(t, runLoadTest(srv.URL, 1, 20*time.Millisecond, "g-1"))

	info, err := os.Stat(tmpFile)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestGameTargeterRotatesEndpoints(t *testing.T) {
	targeter := newGameTargeter("http://santa", "g-1")
	var urls []string
	for i := 0; i < 3; i++ {
		var target vegeta.Target
		require.NoError(t, targeter(&target))
		urls = append(urls, target.Method+" "+target.URL)
	}
	require.ElementsMatch(t, []string{
		"GET http://santa/games/get?game_id=g-1",
		"GET http://santa/games/",
		"POST http://santa/participants/register",
	}, urls)
}

func TestDumpTargetsWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "targets.json")
	require.NoError(t, dumpTargets(path, newGameTargeter("http://santa", "g-1"), 4))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, string(data), "/participants/register")
}

func TestRenderReportReadsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "results.bin")
	file, err := os.Create(tmpFile)
	require.NoError(t, err)
	enc := vegeta.NewEncoder(file)
	now := time.Now()
	require.NoError(t, enc.Encode(&vegeta.Result{
		Code:      http.StatusOK,
		Timestamp: now,
		Latency:   time.Millisecond,
		BytesIn:   10,
		BytesOut:  5,
	}))
	require.NoError(t, enc.Encode(&vegeta.Result{
		Code:      http.StatusBadRequest,
		Timestamp: now.Add(time.Millisecond),
		Latency:   2 * time.Millisecond,
	}))
	require.NoError(t, file.Close())

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, tmpFile))
	require.Contains(t, buf.String(), "Requests      [total")
}

func TestWritePlotInstructions(t *testing.T) {
	var buf bytes.Buffer
	prev := resultsFile
	resultsFile = "custom.bin"
	defer func() { resultsFile = prev }()

	writePlotInstructions(&buf)
	output := buf.String()
	require.Contains(t, output, "vegeta plot custom.bin")
	require.Contains(t, output, "go install github.com/tsenart/vegeta/v12@latest")
}
