package crawl

// Frontier is a FIFO crawl queue with exact deduplication. Insertion
// order is discovery order, so draining the frontier front-to-back
// yields a breadth-first traversal. A URL that has ever been pushed can
// never be pushed again, which keeps the queue free of duplicates
// relative to everything queued or already visited.
//
// The frontier has exactly one mutator (the sequential crawl loop), so
// it is not synchronized.
type Frontier struct {
	queue []string
	seen  map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]struct{})}
}

// Push appends a URL to the back of the queue.
// Returns false if the URL has already been seen.
func (f *Frontier) Push(url string) bool {
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.seen[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the URL at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Seen returns true if the URL has ever been pushed.
func (f *Frontier) Seen(url string) bool {
	_, ok := f.seen[url]
	return ok
}
