package agent

import (
	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/session"
)

func (r *Router) general(_ *session.Context) domain.Response {
	return domain.Response{
		Agent: domain.AgentGeneral,
		Message: "👋 Hello! I'm Sparky, your advanced AI shopping assistant!\n\n" +
			"I'm designed to make your shopping experience seamless and fun:\n\n" +
			"**🎯 Smart Recommendations** - I understand your needs and budget\n" +
			"**🛒 End-to-End Shopping** - From discovery to checkout, all in chat\n" +
			"**🤖 Multi-Agent System** - Specialized agents for different tasks\n" +
			"**⚡ Instant Responses** - No page loading, just conversation\n\n" +
			"Try saying something like:\n" +
			"• \"I need a birthday gift for my 8-year-old nephew, budget $50\"\n" +
			"• \"Show me my cart\"\n" +
			"• \"I want to plan a BBQ for 10 people\"\n\n" +
			"What can I help you find today?",
		Actions:  []string{"start_shopping"},
		NextStep: "ready_for_request",
	}
}

func (r *Router) coordinator(_ *session.Context) domain.Response {
	return domain.Response{
		Agent: domain.AgentCoordinator,
		Message: "👋 Hi! I'm Sparky, your AI shopping assistant! I can help you:\n\n" +
			"🛍️ **Find Products** - Tell me what you're looking for\n" +
			"🛒 **Manage Cart** - Add, remove, or check your items\n" +
			"💳 **Complete Purchase** - Handle checkout end-to-end\n" +
			"🎯 **Get Recommendations** - Based on your needs and budget\n\n" +
			"What would you like to do today?",
		Actions:  []string{},
		NextStep: "awaiting_user_input",
	}
}
