package apifootball

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/galo-project/clube-api/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		Host:    server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func playersPage(page, total int, names ...string) string {
	items := make([]string, 0, len(names))
	for i, name := range names {
		items = append(items, fmt.Sprintf(
			`{"player":{"id":%d,"name":"%s","age":25,"photo":"https://cdn/p.png"},"statistics":[{"league":{"name":"Serie A","season":2023},"games":{"appearences":10,"position":"Attacker","rating":"7.25"},"goals":{"total":3,"assists":1}}]}`,
			page*100+i, name,
		))
	}
	return fmt.Sprintf(`{"response":[%s],"paging":{"current":%d,"total":%d}}`, strings.Join(items, ","), page, total)
}

func TestClient_FetchSquad_AggregatesAllPagesInOrder(t *testing.T) {
	var requests atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		require.Equal(t, "/players", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		require.NotEmpty(t, r.Header.Get("x-rapidapi-host"))
		require.Equal(t, "1062", r.URL.Query().Get("team"))
		require.Equal(t, "2023", r.URL.Query().Get("season"))

		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, playersPage(1, 3, "Everson", "Hulk"))
		case "2":
			fmt.Fprint(w, playersPage(2, 3, "Zaracho"))
		case "3":
			fmt.Fprint(w, playersPage(3, 3, "Paulinho", "Vargas"))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	records, err := client.FetchSquad(context.Background(), 1062, 2023)
	require.NoError(t, err)
	require.EqualValues(t, 3, requests.Load())
	require.Len(t, records, 5)

	// Page-ascending, in-page order.
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}
	require.Equal(t, []string{"Everson", "Hulk", "Zaracho", "Paulinho", "Vargas"}, names)

	first := records[0]
	require.Equal(t, 25, first.Age)
	require.Len(t, first.Stats, 1)
	require.Equal(t, "Serie A", first.Stats[0].League)
	require.Equal(t, 10, first.Stats[0].Appearances)
	require.Equal(t, 3, first.Stats[0].Goals)
	require.Equal(t, 1, first.Stats[0].Assists)
	require.NotNil(t, first.Stats[0].Rating)
	require.InDelta(t, 7.25, *first.Stats[0].Rating, 0.001)
}

func TestClient_FetchSquad_MissingPagingDefaultsToSinglePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.URL.Query().Get("page"))
		fmt.Fprint(w, `{"response":[{"player":{"id":1,"name":"Everson"},"statistics":[]}]}`)
	})

	records, err := client.FetchSquad(context.Background(), 1062, 2023)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Everson", records[0].Name)
	require.Equal(t, 0, records[0].Age)
}

func TestClient_FetchSquad_EmptyFirstPageIsNoData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":[],"paging":{"current":1,"total":1}}`)
	})

	_, err := client.FetchSquad(context.Background(), 1062, 2023)
	require.ErrorIs(t, err, usecase.ErrNoData)
}

func TestClient_FetchSquad_AnyPageFailureFailsTheWholeFetch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, playersPage(1, 3, "Everson"))
		case "2":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"errors":["boom"]}`)
		case "3":
			fmt.Fprint(w, playersPage(3, 3, "Paulinho"))
		}
	})

	_, err := client.FetchSquad(context.Background(), 1062, 2023)
	require.Error(t, err)
	require.Contains(t, err.Error(), "page 2")
}

func TestClient_FetchSquad_NullStatFieldsDefaultToZeroAndNilRating(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":[{"player":{"id":1,"name":"Backup","age":null},"statistics":[{"league":{"name":"Copa do Brasil","season":2023},"games":{"appearences":null,"position":null,"rating":null},"goals":{"total":null,"assists":null}}]}],"paging":{"current":1,"total":1}}`)
	})

	records, err := client.FetchSquad(context.Background(), 1062, 2023)
	require.NoError(t, err)
	require.Len(t, records, 1)

	stat := records[0].Stats[0]
	require.Zero(t, stat.Appearances)
	require.Zero(t, stat.Goals)
	require.Zero(t, stat.Assists)
	require.Nil(t, stat.Rating)
	require.Empty(t, stat.Position)
}

func TestClient_FetchTeam_MapsProfileAndVenue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/teams", r.URL.Path)
		require.Equal(t, "1062", r.URL.Query().Get("id"))
		fmt.Fprint(w, `{"response":[{"team":{"id":1062,"name":"Atletico-MG","country":"Brazil","founded":1908,"logo":"https://cdn/1062.png"},"venue":{"name":"Arena MRV","address":"Av. Deputado","city":"Belo Horizonte","capacity":44892,"image":"https://cdn/arena.png"}}]}`)
	})

	team, err := client.FetchTeam(context.Background(), 1062)
	require.NoError(t, err)
	require.EqualValues(t, 1062, team.ID)
	require.Equal(t, "Atletico-MG", team.Name)
	require.Equal(t, 1908, team.Founded)
	require.Equal(t, "Arena MRV", team.Venue.Name)
	require.Equal(t, 44892, team.Venue.Capacity)
}

func TestClient_FetchTeam_EmptyResponseIsNoData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":[]}`)
	})

	_, err := client.FetchTeam(context.Background(), 1062)
	require.ErrorIs(t, err, usecase.ErrNoData)
}

func TestClient_FetchSeasons_ReturnsYearsWithCurrentFlag(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/leagues", r.URL.Path)
		require.Equal(t, "71", r.URL.Query().Get("id"))
		fmt.Fprint(w, `{"response":[{"seasons":[{"year":2022,"current":false},{"year":2023,"current":false},{"year":2024,"current":true}]}]}`)
	})

	seasons, err := client.FetchSeasons(context.Background(), 71)
	require.NoError(t, err)
	require.Len(t, seasons, 3)
	require.True(t, seasons[2].Current)
	require.Equal(t, 2022, seasons[0].Year)
}

func TestClient_FetchStandings_PassesRowsThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/standings", r.URL.Path)
		require.Equal(t, "71", r.URL.Query().Get("league"))
		require.Equal(t, "2023", r.URL.Query().Get("season"))
		fmt.Fprint(w, `{"response":[{"league":{"id":71,"standings":[[{"rank":1,"team":{"name":"Botafogo"}}]]}}]}`)
	})

	rows, err := client.FetchStandings(context.Background(), 71, 2023)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Contains(t, rows[0], "league")
}

func TestClient_DoJSON_RedactsAPIKeyFromTransportErrors(t *testing.T) {
	client := NewClient(ClientConfig{
		Host:    "http://127.0.0.1:0",
		APIKey:  "super-secret-key",
		Timeout: time.Second,
	})

	_, err := client.FetchTeam(context.Background(), 1062)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "super-secret-key")
}
