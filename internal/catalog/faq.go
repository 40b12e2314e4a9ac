package catalog

// Message is a translatable string: a locale key plus {name} arguments as
// alternating name/value pairs.
type Message struct {
	Key  string
	Args []string
}

// FAQEntry is one generated question with its answer parts. Answer parts
// are joined in order.
type FAQEntry struct {
	Question Message
	Answer   []Message
}

// FAQ derives the three standard questions for a tool from its name, url
// and pricing.
func FAQ(t Tool) []FAQEntry {
	name := []string{"name", t.Name}

	pricing := FAQEntry{Question: Message{Key: "faq.free.q", Args: name}}
	if t.Pricing.HasFree {
		pricing.Answer = append(pricing.Answer, Message{Key: "faq.free.yes", Args: name})
	} else {
		pricing.Answer = append(pricing.Answer, Message{Key: "faq.free.no", Args: []string{"name", t.Name, "price", t.Pricing.StartingPrice}})
	}
	if t.Pricing.HasFreeTrial {
		pricing.Answer = append(pricing.Answer, Message{Key: "faq.free.trial"})
	}

	languages := FAQEntry{
		Question: Message{Key: "faq.lang.q", Args: name},
		Answer:   []Message{{Key: "faq.lang.a", Args: name}},
	}

	start := FAQEntry{Question: Message{Key: "faq.start.q", Args: name}}
	start.Answer = append(start.Answer, Message{Key: "faq.start.intro", Args: []string{"name", t.Name, "url", t.URL}})
	switch {
	case t.Pricing.HasFree:
		start.Answer = append(start.Answer, Message{Key: "faq.start.free"})
	case t.Pricing.HasFreeTrial:
		start.Answer = append(start.Answer, Message{Key: "faq.start.trial"})
	default:
		start.Answer = append(start.Answer, Message{Key: "faq.start.paid"})
	}
	start.Answer = append(start.Answer, Message{Key: "faq.start.done"})

	return []FAQEntry{pricing, languages, start}
}
