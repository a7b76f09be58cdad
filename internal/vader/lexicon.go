package vader

// lexicon maps lowercase tokens to their mean valence rating on the
// [-4, 4] scale used by the VADER lexicon. This is a compact English
// subset covering the vocabulary common in product and service feedback.
var lexicon = map[string]float64{
	// Strong positive
	"amazing": 2.8, "awesome": 3.1, "best": 3.2, "brilliant": 2.8,
	"excellent": 2.7, "exceptional": 2.4, "fantastic": 2.6, "flawless": 2.7,
	"great": 3.1, "incredible": 2.6, "love": 3.2, "loved": 2.9,
	"loves": 2.7, "outstanding": 2.8, "perfect": 2.7, "superb": 3.0,
	"wonderful": 2.7, "wow": 2.8,

	// Moderate positive
	"appreciate": 1.8, "appreciated": 2.0, "beautiful": 2.9, "benefit": 1.8,
	"better": 1.9, "calm": 1.3, "caring": 2.2, "clean": 1.7,
	"clear": 1.6, "comfortable": 1.9, "convenient": 1.7, "delight": 2.6,
	"delighted": 2.9, "easy": 1.9, "effective": 1.9, "efficient": 1.8,
	"empathetic": 1.9, "empowering": 2.3, "encouraging": 2.1, "enjoy": 2.2,
	"enjoyed": 2.3, "excited": 2.2, "fast": 1.5, "friendly": 2.2,
	"fun": 2.3, "glad": 2.0, "good": 1.9, "grateful": 2.4,
	"happy": 2.7, "helpful": 1.9, "helps": 1.5, "impressed": 2.2,
	"impressive": 2.3, "improved": 1.8, "improvement": 1.5, "inclusive": 1.6,
	"innovative": 1.8, "intuitive": 1.7, "kind": 2.4, "like": 1.5,
	"liked": 1.8, "nice": 1.8, "pleasant": 2.0, "pleased": 2.1,
	"positive": 2.1, "professional": 1.5, "prompt": 1.3, "recommend": 1.6,
	"recommended": 1.7, "reliable": 1.9, "responsive": 1.6, "safe": 1.6,
	"satisfied": 1.9, "seamless": 1.8, "secure": 1.4, "simple": 1.2,
	"smooth": 1.6, "supportive": 2.0, "thank": 1.9, "thanks": 1.9,
	"thorough": 1.3, "thoughtful": 2.1, "trust": 2.1, "useful": 1.9,
	"valuable": 2.1, "welcoming": 2.1, "works": 1.2,

	// Mild positive
	"adequate": 0.9, "decent": 1.1, "fine": 0.8, "ok": 0.9,
	"okay": 0.9, "stable": 1.0,

	// Mild negative
	"annoying": -1.9, "average": -0.3, "basic": -0.4, "bland": -1.1,
	"boring": -1.3, "bug": -1.4, "buggy": -1.9, "clunky": -1.5,
	"concern": -1.2, "concerned": -1.4, "confused": -1.4, "confusing": -1.6,
	"crash": -1.6, "crashed": -1.7, "crashes": -1.6, "delay": -1.2,
	"delayed": -1.3, "delays": -1.2, "difficult": -1.5, "disappointed": -2.1,
	"disappointing": -2.2, "doubt": -1.2, "error": -1.6, "errors": -1.6,
	"expensive": -1.0, "fail": -2.0, "failed": -2.1, "fails": -1.9,
	"failure": -2.1, "freeze": -1.3, "freezes": -1.3, "frustrated": -2.1,
	"frustrating": -2.1, "glitch": -1.4, "glitches": -1.4, "hard": -0.4,
	"inconvenient": -1.5, "issue": -1.1, "issues": -1.2, "lag": -1.2,
	"laggy": -1.4, "limited": -0.9, "lost": -1.3, "mediocre": -1.3,
	"misleading": -1.9, "missing": -1.2, "mistake": -1.6, "mistakes": -1.7,
	"outdated": -1.2, "overpriced": -1.6, "problem": -1.5, "problems": -1.6,
	"slow": -1.2, "stuck": -1.3, "unclear": -1.3, "unhelpful": -1.7,
	"unresponsive": -1.6, "unstable": -1.5, "waiting": -0.6, "weak": -1.3,
	"worried": -1.6, "worry": -1.4, "wrong": -1.6,

	// Strong negative
	"angry": -2.3, "awful": -2.6, "bad": -2.5, "broken": -2.0,
	"disaster": -2.8, "dreadful": -2.7, "hate": -2.7, "hated": -2.8,
	"horrible": -2.5, "impossible": -1.8, "insecure": -1.7, "nightmare": -2.7,
	"painful": -2.1, "poor": -2.1, "scam": -2.9, "terrible": -2.6,
	"unacceptable": -2.3, "unreliable": -1.9, "unsafe": -2.0, "unusable": -2.4,
	"useless": -2.2, "waste": -2.2, "worst": -3.1, "worthless": -2.7,
}

// boosters scale the valence of the word they precede. Positive entries
// intensify, negative entries dampen.
var boosters = map[string]float64{
	"absolutely": 0.293, "completely": 0.293, "especially": 0.293,
	"exceptionally": 0.293, "extremely": 0.293, "highly": 0.293,
	"incredibly": 0.293, "particularly": 0.293, "really": 0.293,
	"remarkably": 0.293, "so": 0.293, "super": 0.293, "totally": 0.293,
	"truly": 0.293, "very": 0.293,

	"almost": -0.293, "barely": -0.293, "fairly": -0.293, "hardly": -0.293,
	"kinda": -0.293, "marginally": -0.293, "occasionally": -0.293,
	"partly": -0.293, "slightly": -0.293, "somewhat": -0.293, "sorta": -0.293,
}

// negations flip the valence of words within the lookback window.
var negations = map[string]struct{}{
	"aint": {}, "cannot": {}, "cant": {}, "couldnt": {}, "didnt": {},
	"doesnt": {}, "dont": {}, "hardly": {}, "isnt": {}, "lack": {},
	"lacking": {}, "neither": {}, "never": {}, "no": {}, "nobody": {},
	"none": {}, "nor": {}, "not": {}, "nothing": {}, "nowhere": {},
	"shouldnt": {}, "wasnt": {}, "without": {}, "wont": {}, "wouldnt": {},
}
