// Package agent routes classified utterances to specialized handlers and
// owns the order lifecycle. Handlers are methods on Router taking the
// session context explicitly; they mutate it and return a structured
// Response. Every turn produces a well-formed Response, whatever happens.
package agent

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/sparkyshop/sparky/internal/catalog"
	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/intent"
	"github.com/sparkyshop/sparky/internal/session"
)

// topRecommendations is how many products a response carries.
const topRecommendations = 3

type Router struct {
	catalog  *catalog.Catalog
	log      *zap.Logger
	orderSeq atomic.Int64
	now      func() time.Time
}

func NewRouter(c *catalog.Catalog, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Router{catalog: c, log: log, now: time.Now}
	// seed so order numbers differ across restarts; Add keeps them unique
	// and monotonic within a process
	r.orderSeq.Store(time.Now().UnixMilli() % 10_000_000)
	return r
}

// ProcessMessage runs one full turn: classify, dispatch, log the exchange.
// A panicking handler is converted into an apology response; the context
// stays valid for the next turn either way.
func (r *Router) ProcessMessage(sc *session.Context, message string) (resp domain.Response) {
	sc.AppendUser(message)

	defer func() {
		if p := recover(); p != nil {
			r.log.Error("turn failed", zap.Any("panic", p))
			resp = domain.Response{
				Agent:    domain.AgentError,
				Message:  "I'm having trouble processing your request. Please try again!",
				Actions:  []string{},
				NextStep: "awaiting_user_input",
			}
			sc.AppendAssistant(resp.Message)
		}
	}()

	it := intent.Classify(message)
	sc.LastIntent = it

	switch it {
	case intent.ProductDiscovery:
		resp = r.discovery(sc, message)
	case intent.ProductDetails:
		resp = r.details(sc, message)
	case intent.CartManagement:
		resp = r.cart(sc, message)
	case intent.PaymentProcessing:
		resp = r.payment(sc, message)
	case intent.GeneralQuestion:
		resp = r.general(sc)
	default:
		resp = r.coordinator(sc)
	}

	r.log.Info("message routed",
		zap.String("session", sc.ID),
		zap.String("intent", string(it)),
		zap.String("agent", string(resp.Agent)))

	sc.AppendAssistant(resp.Message)
	return resp
}
