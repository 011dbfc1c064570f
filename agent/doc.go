// Package agent implements the travel-planning agent nodes: the Planner that
// synthesizes and monitors tasks, the Researcher and Booker workers that
// execute them against tool adapters, and the read-only Summarizer producing
// the final itinerary report.
//
// All nodes fulfil the core.Node contract: locate their own pending work (no
// work is a no-op, not an error), move it through the forward-only status
// lifecycle, post their reasoning trace to the message board and hand a
// delta Update back to the orchestration loop. Adapter failures mark the task
// failed and surface as a session error in the Update; they are never
// retried.
package agent
