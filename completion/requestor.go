package completion

import (
	"cmp"
	"slices"
)

// Requestor receives the proposals made by an [Engine]. For each completion, BeginReporting is called once, then Accept
// once per proposal, then EndReporting once.
type Requestor interface {
	BeginReporting()
	Accept(p *Proposal)
	EndReporting()
}

// RequestorFunc is an adapter which allows an ordinary function to be used as a [Requestor] which only cares about
// proposals.
type RequestorFunc func(p *Proposal)

func (f RequestorFunc) BeginReporting()    {}
func (f RequestorFunc) Accept(p *Proposal) { f(p) }
func (f RequestorFunc) EndReporting()      {}

// ProposalCollector is a [Requestor] which records the proposals of the most recent completion.
type ProposalCollector struct {
	proposals []*Proposal
	done      bool
}

// BeginReporting discards any proposals from a previous completion.
func (c *ProposalCollector) BeginReporting() {
	c.proposals = nil
	c.done = false
}

func (c *ProposalCollector) Accept(p *Proposal) {
	c.proposals = append(c.proposals, p)
}

func (c *ProposalCollector) EndReporting() {
	c.done = true
}

// Done reports whether the most recent completion has finished reporting.
func (c *ProposalCollector) Done() bool {
	return c.done
}

// Proposals returns the proposals in the order they were made.
func (c *ProposalCollector) Proposals() []*Proposal {
	return c.proposals
}

// Sorted returns the proposals sorted by completion text and then by kind.
func (c *ProposalCollector) Sorted() []*Proposal {
	sorted := slices.Clone(c.proposals)
	slices.SortStableFunc(sorted, func(a, b *Proposal) int {
		return cmp.Or(cmp.Compare(a.Completion, b.Completion), cmp.Compare(a.Kind, b.Kind))
	})
	return sorted
}

// Completions returns the completion text of each proposal in the order they were made.
func (c *ProposalCollector) Completions() []string {
	completions := make([]string, len(c.proposals))
	for i, p := range c.proposals {
		completions[i] = p.Completion
	}
	return completions
}
