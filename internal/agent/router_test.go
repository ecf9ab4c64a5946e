package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkyshop/sparky/internal/catalog"
	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/intent"
	"github.com/sparkyshop/sparky/internal/session"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return NewRouter(c, nil)
}

func TestProcessMessage_AppendsConversation(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()

	resp := r.ProcessMessage(sc, "hello")

	assert.Equal(t, domain.AgentGeneral, resp.Agent)
	assert.Equal(t, intent.GeneralQuestion, sc.LastIntent)
	require.Len(t, sc.Conversation, 2)
	assert.Equal(t, domain.RoleUser, sc.Conversation[0].Role)
	assert.Equal(t, "hello", sc.Conversation[0].Content)
	assert.Equal(t, domain.RoleAssistant, sc.Conversation[1].Role)
	assert.Equal(t, resp.Message, sc.Conversation[1].Content)
}

func TestProcessMessage_FallbackCoordinator(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()

	resp := r.ProcessMessage(sc, "xyzzy")

	assert.Equal(t, domain.AgentCoordinator, resp.Agent)
	assert.Equal(t, "awaiting_user_input", resp.NextStep)
	assert.NotNil(t, resp.Actions)
}

func TestProcessMessage_DiscoveryScenario(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()

	resp := r.ProcessMessage(sc, "I need a birthday gift for my 8-year-old nephew, budget $50")

	assert.Equal(t, domain.AgentDiscovery, resp.Agent)
	require.NotNil(t, resp.Requirements)
	assert.Equal(t, 50, resp.Requirements.Budget)
	assert.Equal(t, 8, resp.Requirements.Age)
	assert.Equal(t, domain.OccasionBirthday, resp.Requirements.Occasion)

	require.NotEmpty(t, resp.Products)
	assert.LessOrEqual(t, len(resp.Products), 3)
	for _, p := range resp.Products {
		assert.Equal(t, "Toys", p.Category)
		assert.LessOrEqual(t, p.Price, 50.0)
	}

	// full ranked list is retained for follow-up references
	assert.GreaterOrEqual(t, len(sc.CurrentProducts), len(resp.Products))
	assert.Equal(t, resp.Products[0].ID, sc.CurrentProducts[0].ID)
}

func TestProcessMessage_SimilarRequiresSelection(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()

	// no selected product: "similar" goes through standard discovery
	resp := r.ProcessMessage(sc, "show me similar gift ideas")
	assert.Equal(t, domain.AgentDiscovery, resp.Agent)
	assert.NotNil(t, resp.Requirements)

	// with a selection: the similar variant keys on category
	lego, ok := r.catalog.ByID(1)
	require.True(t, ok)
	sc.SelectedProduct = &lego

	resp = r.ProcessMessage(sc, "show me similar products")
	assert.Equal(t, domain.AgentDiscovery, resp.Agent)
	assert.Nil(t, resp.Requirements)
	require.NotEmpty(t, resp.Products)
	assert.LessOrEqual(t, len(resp.Products), 3)
	for _, p := range resp.Products {
		assert.Equal(t, lego.Category, p.Category)
		assert.NotEqual(t, lego.ID, p.ID)
	}
}

func TestProcessMessage_BuyNowPhraseRoutesToPayment(t *testing.T) {
	r := newTestRouter(t)
	sc := session.NewContext()
	lego, _ := r.catalog.ByID(1)
	sc.SelectedProduct = &lego

	resp := r.ProcessMessage(sc, "buy the lego set now")

	assert.Equal(t, domain.AgentPayment, resp.Agent)
	assert.Equal(t, domain.PurchaseDirect, resp.PurchaseType)
}

func TestProcessMessage_RecoversFromHandlerFailure(t *testing.T) {
	// a nil catalogue makes discovery panic; the turn must still resolve
	// and the context must stay usable
	r := NewRouter(nil, nil)
	sc := session.NewContext()

	resp := r.ProcessMessage(sc, "I need a gift")

	assert.Equal(t, domain.AgentError, resp.Agent)
	assert.NotEmpty(t, resp.Message)
	require.Len(t, sc.Conversation, 2)

	// context still valid for the next turn
	resp = r.ProcessMessage(sc, "hello")
	assert.Equal(t, domain.AgentGeneral, resp.Agent)
}
