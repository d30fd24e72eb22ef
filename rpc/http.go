package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/storage"
	"github.com/VictoriaMetrics/fastcache"
	"github.com/dimfeld/httptreemux"
	"github.com/gofrs/uuid"
	"github.com/gorilla/handlers"
	"github.com/unrolled/render"
)

type R struct {
	Store   storage.Store
	Custom  *config.Custom
	cache   *fastcache.Cache
	startAt time.Time
}

type Call struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(custom *config.Custom, store storage.Store) *httptreemux.TreeMux {
	if custom == nil {
		custom = config.Default()
	}
	impl := &R{
		Store:   store,
		Custom:  custom,
		cache:   fastcache.New(custom.Node.MemoryCacheSize * 1024 * 1024),
		startAt: time.Now(),
	}
	router := httptreemux.New()
	router.POST("/", impl.handle)
	registerHanders(router)
	return router
}

func registerHanders(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("RPC PANIC %v %s\n", rcv, debug.Stack())
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": fmt.Sprint(rcv)})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(r.Body)
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	trace := uuid.Must(uuid.NewV4())
	logger.Verbosef("RPC %s %s %v\n", trace, call.Method, call.Params)

	data, err := impl.dispatch(call)
	if err != nil {
		logger.Verbosef("RPC %s %s ERROR %s\n", trace, call.Method, err.Error())
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"error": err.Error()})
		return
	}
	render.New().JSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

func (impl *R) dispatch(call Call) (interface{}, error) {
	switch call.Method {
	case "getinfo":
		return impl.getInfo()
	case "add", "sub", "mul", "div":
		return impl.binaryOperation(call.Method, call.Params)
	case "neg":
		return impl.negate(call.Params)
	case "canonical":
		return impl.canonicalize(call.Params)
	case "decimal":
		return impl.toDecimal(call.Params)
	case "cmp":
		return impl.compare(call.Params)
	case "equal":
		return impl.equal(call.Params)
	case "setrational":
		return impl.setRational(call.Params)
	case "getrational":
		return impl.getRational(call.Params)
	case "removerational":
		return impl.removeRational(call.Params)
	case "listrationals":
		return impl.listRationals(call.Params)
	default:
		return nil, fmt.Errorf("unknown method %s", call.Method)
	}
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,GET,POST")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}

func NewServer(custom *config.Custom, store storage.Store, port int) *http.Server {
	router := NewRouter(custom, store)
	handler := handleCORS(router)
	handler = handlers.ProxyHeaders(handler)
	return &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: handler}
}

func StartHTTP(custom *config.Custom, store storage.Store, port int) error {
	server := NewServer(custom, store, port)
	logger.Printf("RPC listening on %s\n", server.Addr)
	return server.ListenAndServe()
}
