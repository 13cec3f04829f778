package usecase

import "task-capture/internal/extraction"

// Keyword tables. Multi-word entries match as whole phrases.
var (
	actionVerbs = []string{
		"pick up", "drop off", "buy", "get", "grab", "remember", "forget",
		"call", "email", "text", "send", "schedule", "book", "pay", "submit",
		"clean", "wash", "fix", "repair", "replace", "water", "make", "take",
		"bring", "finish", "order", "renew", "return", "cancel", "check",
		"write", "prepare", "cook", "visit", "see", "meet", "feed", "walk",
	}

	timeRefs = []string{
		"today", "tonight", "tomorrow", "yesterday", "at", "by", "before",
		"on", "until", "next", "this", "morning", "afternoon", "evening",
		"noon", "midnight", "weekend", "monday", "tuesday", "wednesday",
		"thursday", "friday", "saturday", "sunday",
	}

	requestPhrases = []string{
		"please", "pls", "can you", "could you", "would you", "will you",
	}

	specificTaskWords = []string{
		"buy", "call", "schedule", "submit", "book", "pay", "email", "send",
		"order", "renew", "return", "cancel", "register", "appointment",
	}

	urgencyWords = []string{
		"urgent", "asap", "immediately", "now", "soon", "quickly",
	}

	obligationPhrases = []string{
		"i need to", "you should", "we need", "i have to", "we should",
		"you need to", "i must",
	}

	questionStarts = []string{
		"what", "where", "when", "why", "how", "who",
		"do you", "can you", "will you",
	}

	genericTexts = map[string]struct{}{
		"ok": {}, "okay": {}, "k": {}, "thanks": {}, "thank you": {}, "thx": {},
		"hello": {}, "hi": {}, "hey": {}, "yes": {}, "no": {}, "yep": {},
		"nope": {}, "sure": {}, "cool": {}, "nice": {}, "great": {}, "lol": {},
		"bye": {}, "good morning": {}, "good night": {}, "got it": {},
		"sounds good": {}, "will do": {}, "it": {}, "that": {}, "this": {},
	}
)

// Priority vocabularies, checked urgent first, then low, then high.
var (
	urgentPriorityWords = []string{
		"urgent", "asap", "immediately", "emergency", "critical",
		"right away", "right now",
	}
	lowPriorityWords = []string{
		"whenever", "someday", "eventually", "low priority", "no rush",
		"sometime", "if possible", "when you can",
	}
	highPriorityWords = []string{
		"important", "priority", "high priority", "soon", "deadline", "due",
		"must",
	}
)

// importanceWords is the fixed vocabulary reported as candidate keywords.
var importanceWords = []string{
	"urgent", "asap", "immediately", "emergency", "critical", "important",
	"priority", "deadline", "due", "must", "soon", "today", "tonight",
	"tomorrow", "remember", "don't forget", "need", "required", "overdue",
	"reminder",
}

type categoryRule struct {
	id       string
	keywords []string
}

// categoryTable is scanned in order; the first intersecting entry wins.
var categoryTable = []categoryRule{
	{extraction.CategoryHousehold, []string{
		"clean", "laundry", "dishes", "groceries", "grocery", "trash",
		"garbage", "vacuum", "fix", "repair", "replace", "plants", "cook",
		"kitchen", "milk", "bread", "eggs", "mow", "lawn", "sink", "bulb",
	}},
	{extraction.CategoryHealth, []string{
		"doctor", "dentist", "medicine", "pharmacy", "prescription", "gym",
		"workout", "hospital", "checkup", "therapy", "vitamins", "dr",
		"vet", "pills",
	}},
	{extraction.CategoryWork, []string{
		"meeting", "report", "email", "presentation", "deadline", "project",
		"client", "boss", "office", "submit", "review", "slides",
	}},
	{extraction.CategoryFamily, []string{
		"kids", "mom", "dad", "school", "birthday", "family", "grandma",
		"grandpa", "wife", "husband", "son", "daughter", "anniversary",
	}},
	{extraction.CategoryFinance, []string{
		"pay", "bill", "bills", "rent", "bank", "tax", "taxes", "invoice",
		"budget", "mortgage", "insurance",
	}},
}
