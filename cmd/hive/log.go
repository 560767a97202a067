package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencoord/hive/pkg/models"
)

func newLogCmd() *cobra.Command {
	var (
		level     string
		module    string
		since     string
		watch     bool
		offset    int64
		limit     int
		serverURL string
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Tail the coordination log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if serverURL == "" {
				serverURL = fmt.Sprintf("http://localhost:%d", cfg.HTTPPort)
			}

			var sinceMs int64
			if since != "" {
				d, err := parseSince(since)
				if err != nil {
					return err
				}
				sinceMs = time.Now().Add(-d).UnixMilli()
			}

			filter := func(e models.Event) bool {
				if sinceMs > 0 && e.TsMs < sinceMs {
					return false
				}
				if level != "" {
					if v, _ := e.Data["level"].(string); !strings.EqualFold(v, level) {
						return false
					}
				}
				if module != "" {
					if v, _ := e.Data["module"].(string); v != module {
						return false
					}
				}
				return true
			}

			base := fmt.Sprintf("%s/streams/%s?offset=%d", serverURL, cfg.DefaultProject, offset)
			if !watch {
				return tailOnce(base, limit, filter)
			}
			return tailWatch(base+"&live=1", filter)
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "only events whose payload level matches")
	cmd.Flags().StringVar(&module, "module", "", "only events whose payload module matches")
	cmd.Flags().StringVar(&since, "since", "", "only events newer than Ns|Nm|Nh|Nd")
	cmd.Flags().BoolVar(&watch, "watch", false, "stay attached and stream new events")
	cmd.Flags().Int64Var(&offset, "offset", 0, "resume after this sequence")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum events in one-shot mode")
	cmd.Flags().StringVar(&serverURL, "server", "", "server base URL (default http://localhost:$HTTP_PORT)")
	return cmd
}

// parseSince converts the Ns|Nm|Nh|Nd shorthand to a duration.
func parseSince(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid --since %q: use Ns, Nm, Nh, or Nd", s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid --since %q: use Ns, Nm, Nh, or Nd", s)
	}
	switch s[len(s)-1] {
	case 's':
		return time.Duration(n) * time.Second, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return 0, fmt.Errorf("invalid --since %q: use Ns, Nm, Nh, or Nd", s)
}

func tailOnce(url string, limit int, filter func(models.Event) bool) error {
	resp, err := http.Get(fmt.Sprintf("%s&limit=%d", url, limit))
	if err != nil {
		return fmt.Errorf("server unreachable: %w (is hived running?)", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	var body struct {
		Events []models.Event `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	for _, e := range body.Events {
		if filter(e) {
			printEvent(e)
		}
	}
	return nil
}

func tailWatch(url string, filter func(models.Event) bool) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("server unreachable: %w (is hived running?)", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var e models.Event
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &e); err != nil {
			continue
		}
		if e.Type == "" || !filter(e) {
			continue
		}
		printEvent(e)
	}
	return scanner.Err()
}

func printEvent(e models.Event) {
	if jsonOutput {
		buf, _ := json.Marshal(e)
		fmt.Println(string(buf))
		return
	}
	ts := time.UnixMilli(e.TsMs).Format("15:04:05")
	fmt.Printf("%6d  %s  %s", e.Sequence, ts, e.Type)
	if len(e.Data) > 0 {
		buf, _ := json.Marshal(e.Data)
		fmt.Printf("  %s", string(buf))
	}
	fmt.Println()
}
