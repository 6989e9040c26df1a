package main

import (
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/nci/gomemcache/memcache"
)

// Index API for prepared rasters. Records the identity of every output
// the preparation pipeline writes (path, looks, crop option, extents,
// size) and serves lookups over them; an optional memcached front
// absorbs repeated queries.

var (
	db       *sql.DB
	mc       *memcache.Client
	dbName   = flag.String("database", "sarprep", "database name")
	dbUser   = flag.String("user", "api", "database user name")
	dbPool   = flag.Int("pool", 8, "database pool size")
	httpPort = flag.Int("port", 8080, "http port")
	mcURI    = flag.String("memcache", "", "memcache uri host:port")
)

// Spit out a simple JSON-formatted error message for Content-Type: application/json
func httpJSONError(response http.ResponseWriter, err error, status int) {
	http.Error(response, fmt.Sprintf(`{ "error": %q }`, err.Error()), status)
}

func handler(response http.ResponseWriter, request *http.Request) {

	response.Header().Set("Content-Type", "application/json")

	query := request.URL.Query()

	if _, ok := query["record"]; ok {

		// Use Postgres prepared statements and placeholders for input
		// checks. The nullif() noise is to coerce Go's empty string zero
		// values for missing parameters into proper null arguments.

		_, err := db.Exec(
			`insert into prepared_outputs
				(path, source_path, looks, crop_option,
				 xfirst, yfirst, xlast, ylast, width, height)
			 values ($1, $2,
				nullif($3,'')::integer, nullif($4,'')::integer,
				nullif($5,'')::numeric, nullif($6,'')::numeric,
				nullif($7,'')::numeric, nullif($8,'')::numeric,
				nullif($9,'')::integer, nullif($10,'')::integer)
			 on conflict (path) do update set
				source_path = excluded.source_path,
				looks = excluded.looks,
				crop_option = excluded.crop_option,
				xfirst = excluded.xfirst, yfirst = excluded.yfirst,
				xlast = excluded.xlast, ylast = excluded.ylast,
				width = excluded.width, height = excluded.height`,
			request.FormValue("path"),
			request.FormValue("source_path"),
			request.FormValue("looks"),
			request.FormValue("crop_option"),
			request.FormValue("xfirst"),
			request.FormValue("yfirst"),
			request.FormValue("xlast"),
			request.FormValue("ylast"),
			request.FormValue("width"),
			request.FormValue("height"),
		)

		if err != nil {
			httpJSONError(response, err, 400)
			return
		}

		response.Write([]byte(`{ "recorded": true }`))
		return
	}

	if _, ok := query["search"]; ok {

		var hash string

		if mc != nil {
			buff := md5.Sum([]byte(request.URL.RequestURI()))
			hash = hex.EncodeToString(buff[:])

			if cached, ok := mc.Get(hash); ok == nil {
				response.Write(cached.Value)
				return
			}
		}

		var payload string
		err := db.QueryRow(
			`select coalesce(json_agg(row_to_json(p)), '[]'::json)::text
			 from prepared_outputs p
			 where p.source_path = coalesce(nullif($1,''), p.source_path)
			   and p.looks = coalesce(nullif($2,'')::integer, p.looks)
			   and p.crop_option = coalesce(nullif($3,'')::integer, p.crop_option)`,
			request.FormValue("source_path"),
			request.FormValue("looks"),
			request.FormValue("crop_option"),
		).Scan(&payload)

		if err != nil {
			httpJSONError(response, err, 400)
			return
		}

		response.Write([]byte(payload))

		if mc != nil {
			// don't care about errors; memcache may not necessarily retain this anyway
			mc.Set(&memcache.Item{Key: hash, Value: []byte(payload)})
		}

		return
	}

	httpJSONError(response, errors.New("unknown operation; currently supported: ?record ?search"), 400)
}

func main() {

	flag.Parse()

	log.Printf("dbUser %s dbName %s dbPool %d httpPort %d", *dbUser, *dbName, *dbPool, *httpPort)

	dbinfo := fmt.Sprintf("user=%s host=/var/run/postgresql dbname=%s sslmode=disable", *dbUser, *dbName)

	var err error
	db, err = sql.Open("postgres", dbinfo)

	if err != nil {
		panic(err)
	}

	db.SetMaxOpenConns(*dbPool)

	if len(*mcURI) > 0 {
		mc = memcache.New(*mcURI)
	}

	http.HandleFunc("/", handler)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *httpPort), nil))
}
