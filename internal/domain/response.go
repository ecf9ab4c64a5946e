package domain

// AgentName identifies which specialized agent produced a response.
type AgentName string

const (
	AgentCoordinator AgentName = "coordinator"
	AgentDiscovery   AgentName = "discovery"
	AgentDetails     AgentName = "details"
	AgentCart        AgentName = "cart"
	AgentPayment     AgentName = "payment"
	AgentGeneral     AgentName = "general"
	AgentError       AgentName = "error"
)

// Role is the author of a conversation entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one append-only conversation log entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Response is what every turn returns to the caller. Agent, Message, Actions
// and NextStep are always set; the remaining fields are populated only by the
// branches that produce them.
type Response struct {
	Agent           AgentName           `json:"agent"`
	Message         string              `json:"message"`
	Products        []Product           `json:"products,omitempty"`
	Product         *Product            `json:"product,omitempty"`
	Requirements    *RequirementProfile `json:"requirements,omitempty"`
	Cart            []CartLine          `json:"cart,omitempty"`
	Total           float64             `json:"total,omitempty"`
	OrderSummary    *OrderSummary       `json:"order_summary,omitempty"`
	PurchaseType    PurchaseType        `json:"purchase_type,omitempty"`
	Actions         []string            `json:"actions"`
	InteractionTips []string            `json:"interaction_tips,omitempty"`
	NextStep        string              `json:"next_step"`
}
