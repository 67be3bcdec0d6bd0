//go:build integration || !unit

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "matcha_map/internal/adapters/http_server"
	redisad "matcha_map/internal/adapters/redis"
	"matcha_map/internal/app"
	"matcha_map/internal/catalog"
	mysqlrepo "matcha_map/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func TestHTTP_EndToEnd_SubmitAndRank(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=matcha",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "matcha")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	// Real cache behind miniredis; real catalog; full router with
	// middleware, exactly as cmd/api wires it.
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	cafes := catalog.All()
	store := mysqlrepo.New(db)
	q := app.NewQueryService(cafes, store, cache, 10*time.Minute)
	rs := app.NewReviewService(cafes, store, cache)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{Q: q, R: rs, SubmitRPS: 100})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	post := func(cafeID string, rating int, comment, author string) *http.Response {
		t.Helper()
		body, _ := json.Marshal(map[string]any{"rating": rating, "comment": comment, "author": author})
		res, err := http.Post(fmt.Sprintf("%s/v1/cafes/%s/reviews", ts.URL, cafeID), "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		return res
	}

	// Submit two reviews for munch-deli, one for luxxe.
	for _, r := range []struct {
		cafe   string
		rating int
	}{
		{"munch-deli", 5},
		{"munch-deli", 4},
		{"luxxe", 3},
	} {
		res := post(r.cafe, r.rating, "solid matcha", "E2E")
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("submit %s: status %d", r.cafe, res.StatusCode)
		}
		res.Body.Close()
	}

	// Invalid submission is rejected with field errors, no side effect.
	res := post("munch-deli", 0, "", "E2E")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid submit: status %d", res.StatusCode)
	}
	res.Body.Close()

	// Ranked catalog: munch-deli (4.5) before luxxe (3.0), unrated after.
	listRes, err := http.Get(ts.URL + "/v1/cafes")
	if err != nil {
		t.Fatalf("GET cafes: %v", err)
	}
	defer listRes.Body.Close()
	if listRes.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", listRes.StatusCode)
	}

	var cafesOut []struct {
		ID     string `json:"id"`
		Rating *struct {
			Average float64 `json:"average"`
			Count   int     `json:"count"`
		} `json:"rating"`
	}
	if err := json.NewDecoder(listRes.Body).Decode(&cafesOut); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cafesOut) != catalog.Len() {
		t.Fatalf("want %d cafes, got %d", catalog.Len(), len(cafesOut))
	}
	if cafesOut[0].ID != "munch-deli" || cafesOut[1].ID != "luxxe" {
		t.Fatalf("ranking: got %s, %s", cafesOut[0].ID, cafesOut[1].ID)
	}
	if cafesOut[0].Rating == nil || cafesOut[0].Rating.Average != 4.5 || cafesOut[0].Rating.Count != 2 {
		t.Fatalf("munch-deli rating: %+v", cafesOut[0].Rating)
	}
	if cafesOut[2].Rating != nil {
		t.Fatal("unrated cafes must carry no rating")
	}

	// Review page: newest first, cache warms on first read.
	revRes, err := http.Get(ts.URL + "/v1/cafes/munch-deli/reviews")
	if err != nil {
		t.Fatalf("GET reviews: %v", err)
	}
	defer revRes.Body.Close()
	var reviews []struct {
		CafeID string `json:"cafe_id"`
		Rating int    `json:"rating"`
	}
	if err := json.NewDecoder(revRes.Body).Decode(&reviews); err != nil {
		t.Fatalf("decode reviews: %v", err)
	}
	if len(reviews) != 2 || reviews[0].CafeID != "munch-deli" {
		t.Fatalf("reviews page: %+v", reviews)
	}
	if !mr.Exists("reviews:munch-deli:50:-created_at") {
		t.Fatal("review page should be cached after the first read")
	}
}
