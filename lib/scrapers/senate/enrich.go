package senate

import (
	"context"
	"log/slog"
	"sync"
)

const enrichWorkers = 10

type websiteFetcher func(ctx context.Context, wikiPath string) (string, error)

// enrichWebsites fills in the Website field for every senator with a wiki
// path, fetching detail pages through a fixed pool of workers. Each job
// owns exactly one roster slot, so results land at the submitting index no
// matter what order fetches complete in. A failed fetch is logged with the
// senator's name and leaves only that senator's website empty.
func enrichWebsites(ctx context.Context, roster []Senator, fetch websiteFetcher) {
	jobs := make(chan int)
	wg := sync.WaitGroup{}

	for w := 0; w < enrichWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				website, err := fetch(ctx, roster[i].WikiPath)
				if err != nil {
					slog.WarnContext(
						ctx, "could not fetch website",
						"senator", roster[i].Name,
						"err", err,
					)
					continue
				}
				roster[i].Website = website
			}
		}()
	}

	for i := range roster {
		if roster[i].WikiPath == "" {
			continue
		}
		jobs <- i
	}
	close(jobs)

	wg.Wait()
}
