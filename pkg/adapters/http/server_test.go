package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/bioreasoner"
	"github.com/aretw0/bioreasoner/internal/testutils"
	httpAdapter "github.com/aretw0/bioreasoner/pkg/adapters/http"
	"github.com/aretw0/bioreasoner/pkg/adapters/memory"
	"github.com/aretw0/bioreasoner/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wntBody = `{"initial_facts": ["WNT__LIGAND__PRESENT", "LRP6__PROTEIN__PRESENT", "FRIZZLED__PROTEIN__PRESENT", "LRP6__SER_SITES__INTACT", "BETA_CAT__LEVEL__BASELINE"]}`

func newServer(t *testing.T, opts ...httpAdapter.Option) *httptest.Server {
	t.Helper()
	eng, err := bioreasoner.New()
	require.NoError(t, err)
	srv := httptest.NewServer(httpAdapter.NewHandler(eng, opts...))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func TestHealthAndInfo(t *testing.T) {
	srv := newServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	_, info := do(t, http.MethodGet, srv.URL+"/info", "")
	assert.EqualValues(t, 14, info["rules"])
	assert.EqualValues(t, 7, info["contradictions"])
	assert.Equal(t, strings.TrimSpace(bioreasoner.Version), info["version"])
}

func TestRulesAndContradictions(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/rules")
	require.NoError(t, err)
	defer resp.Body.Close()
	var rules []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rules))
	require.Len(t, rules, 14)
	assert.Equal(t, "gf_rtk_activate_pi3k", rules[0]["name"])

	resp2, err := http.Get(srv.URL + "/contradictions")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var pairs []map[string]string
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&pairs))
	require.Len(t, pairs, 7)
	assert.Equal(t, map[string]string{"fact_a": "AKT__STATE__ACTIVE", "fact_b": "AKT__STATE__INACTIVE"}, pairs[0])
}

func TestRun(t *testing.T) {
	srv := newServer(t)

	resp, body := do(t, http.MethodPost, srv.URL+"/run", wntBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "converged", body["status"])
	assert.EqualValues(t, 2, body["iterations"])
	assert.Contains(t, body["final_facts"], "BETA_CAT__LEVEL__UP")
	assert.Len(t, body["steps"], 5)
	assert.Len(t, body["contradictions"], 1)
}

func TestRun_Limit(t *testing.T) {
	srv := newServer(t)

	body := strings.Replace(wntBody, "{", `{"max_iterations": 0, `, 1)
	resp, out := do(t, http.MethodPost, srv.URL+"/run", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "truncated", out["status"])
	assert.Empty(t, out["steps"])

	resp, _ = do(t, http.MethodPost, srv.URL+"/run", `{"initial_facts": [], "max_iterations": -1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRun_BadRequest(t *testing.T) {
	srv := newServer(t)

	tests := []string{
		`not json`,
		`{"initial_facts": "WNT__LIGAND__PRESENT"}`,
		`{"initial_facts": ["  "]}`,
	}
	for _, body := range tests {
		resp, out := do(t, http.MethodPost, srv.URL+"/run", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.NotEmpty(t, out["error"])
	}
}

func TestRunScenario(t *testing.T) {
	srv := newServer(t)

	yamlDoc := "name: inline\ninitial_facts:\n  - GROWTH_FACTOR__LIGAND__PRESENT\n  - RTK__RECEPTOR__PRESENT\nqueries:\n  - APOPTOSIS__TENDENCY__LOW\n  - APOPTOSIS__TENDENCY__HIGH\n"
	resp, out := do(t, http.MethodPost, srv.URL+"/scenarios/run", yamlDoc)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sc := out["scenario"].(map[string]any)
	assert.Equal(t, "inline", sc["name"])
	res := out["engine_result"].(map[string]any)
	assert.Equal(t, "converged", res["status"])
	assert.Equal(t, []any{
		map[string]any{"query": "APOPTOSIS__TENDENCY__LOW", "value": "TRUE"},
		map[string]any{"query": "APOPTOSIS__TENDENCY__HIGH", "value": "FALSE"},
	}, out["answers"])

	resp, _ = do(t, http.MethodPost, srv.URL+"/scenarios/run", "- just\n- a list\n")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNamedScenarios(t *testing.T) {
	loader, err := memory.NewLoaderFromDir(testutils.ScenarioSuite())
	require.NoError(t, err)
	srv := newServer(t, httpAdapter.WithLoader(loader))

	resp, err := http.Get(srv.URL + "/scenarios")
	require.NoError(t, err)
	defer resp.Body.Close()
	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Len(t, names, 7)
	assert.Contains(t, names, "wnt_demo")

	r, out := do(t, http.MethodPost, srv.URL+"/scenarios/wnt_demo/run", "")
	require.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "wnt_demo", out["scenario"].(map[string]any)["name"])

	r, _ = do(t, http.MethodPost, srv.URL+"/scenarios/nope/run", "")
	assert.Equal(t, http.StatusNotFound, r.StatusCode)
}

func TestScenarioRoutesNeedLoader(t *testing.T) {
	srv := newServer(t)
	resp, _ := do(t, http.MethodGet, srv.URL+"/scenarios", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGraphAndMetrics(t *testing.T) {
	m := observability.NewMetrics(nil)
	eng, err := bioreasoner.New(bioreasoner.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)
	srv := httptest.NewServer(httpAdapter.NewHandler(eng, httpAdapter.WithMetrics(m.Handler())))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/graph")
	require.NoError(t, err)
	defer resp.Body.Close()
	graphText, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(graphText), "graph TD\n"))
	assert.Contains(t, string(graphText), "r_gf_rtk_activate_pi3k")

	r, _ := do(t, http.MethodPost, srv.URL+"/run", wntBody)
	require.Equal(t, http.StatusOK, r.StatusCode)

	mresp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer mresp.Body.Close()
	metricsText, err := io.ReadAll(mresp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metricsText), `bioreasoner_runs_total{status="converged"} 1`)
}
