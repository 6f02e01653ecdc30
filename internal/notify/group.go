package notify

import "github.com/Nixie-Tech-LLC/athan/internal/model"

// group is the set of tokens sharing one stored location string and language.
type group struct {
	Location string
	Language string
	Tokens   []string
}

func (g group) key() string {
	return g.Location + "|" + g.Language
}

// groupSubscriptions buckets subscriptions by (location, language), keeping
// first-seen order. Rows missing either field are dropped.
func groupSubscriptions(subs []model.Subscription) []group {
	index := make(map[string]int)
	var groups []group

	for _, s := range subs {
		if s.Location == "" || s.Language == "" || s.Token == "" {
			continue
		}
		g := group{Location: s.Location, Language: s.Language}
		i, ok := index[g.key()]
		if !ok {
			i = len(groups)
			index[g.key()] = i
			groups = append(groups, g)
		}
		groups[i].Tokens = append(groups[i].Tokens, s.Token)
	}
	return groups
}
