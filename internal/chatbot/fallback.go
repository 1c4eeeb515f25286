package chatbot

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Category is the canned-response bucket a message falls into.
type Category int

const (
	CategoryGreeting Category = iota
	CategoryMenu
	CategoryOrder
	CategoryPricing
	CategoryLogistics
	CategoryHours
	CategoryDefault
)

func (c Category) String() string {
	switch c {
	case CategoryGreeting:
		return "greeting"
	case CategoryMenu:
		return "menu"
	case CategoryOrder:
		return "order"
	case CategoryPricing:
		return "pricing"
	case CategoryLogistics:
		return "logistics"
	case CategoryHours:
		return "hours"
	default:
		return "default"
	}
}

type fallbackRule struct {
	category Category
	keywords []string
	replies  []string
}

// fallbackRules is ordered: the first rule with a matching keyword wins,
// so "I want to order a pizza" lands on menu, not order.
var fallbackRules = []fallbackRule{
	{
		category: CategoryGreeting,
		keywords: []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"},
		replies: []string{
			"Hello! Welcome to PizzaChain! 🍕 How can I help you today?",
			"Hi there! I'm here to help with your pizza needs! What can I do for you?",
			"Welcome to PizzaChain! Ready to order some delicious pizza? 🍕",
		},
	},
	{
		category: CategoryMenu,
		keywords: []string{"menu", "pizza", "pizzas", "what do you have", "options", "choices"},
		replies: []string{
			"We have delicious pizzas including Margherita, Pepperoni, Hawaiian, and Meat Lovers! What sounds good to you? 🍕",
			"Our popular pizzas include classic Margherita, spicy Pepperoni, tropical Hawaiian, and hearty Meat Lovers. Which would you like to know more about?",
			"Check out our amazing pizza selection: Margherita, Pepperoni, Hawaiian, and Meat Lovers! All made fresh daily! 🍕",
		},
	},
	{
		category: CategoryOrder,
		keywords: []string{"order", "buy", "purchase", "want", "get", "take"},
		replies: []string{
			"I'd love to help you place an order! What size pizza would you like, and which toppings? 🍕",
			"Great choice! Let's get your order started. What pizza and size would you prefer?",
			"Perfect! What pizza can I add to your order today? We have small, medium, and large sizes available! 🍕",
		},
	},
	{
		category: CategoryPricing,
		keywords: []string{"price", "cost", "how much", "pricing"},
		replies: []string{
			"Our pizzas start at $12 for small, $16 for medium, and $20 for large. Prices may vary by toppings. What size were you thinking? 🍕",
		},
	},
	{
		category: CategoryLogistics,
		keywords: []string{"delivery", "pickup", "location", "address"},
		replies: []string{
			"We offer both delivery and pickup! We're located downtown and deliver within 5 miles. What's your preference? 🚚🍕",
		},
	},
	{
		category: CategoryHours,
		keywords: []string{"hours", "open", "close", "time"},
		replies: []string{
			"We're open Monday-Sunday 11 AM to 11 PM! Perfect time for fresh pizza! 🍕⏰",
		},
	},
}

var defaultReplies = []string{
	"Thanks for your message! I'm here to help with your PizzaChain questions. Feel free to ask about our menu, orders, or anything else! 🍕",
	"I'm here to help with your PizzaChain needs! What would you like to know about our delicious pizzas?",
	"Thank you for contacting PizzaChain! How can I assist you with your pizza order today? 🍕",
}

// Categorize maps a message to its canned-response category. The result
// depends only on the normalized message.
func Categorize(message string) Category {
	text := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}

// Fallback picks canned replies when the upstream path is unavailable or
// switched off.
type Fallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallback builds the engine. Pass a seeded rng for deterministic
// tests; nil gets a time-seeded source.
func NewFallback(rng *rand.Rand) *Fallback {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Fallback{rng: rng}
}

func (f *Fallback) Respond(message string) string {
	replies := repliesFor(Categorize(message))
	if len(replies) == 1 {
		return replies[0]
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return replies[f.rng.Intn(len(replies))]
}

func repliesFor(cat Category) []string {
	for _, rule := range fallbackRules {
		if rule.category == cat {
			return rule.replies
		}
	}
	return defaultReplies
}
