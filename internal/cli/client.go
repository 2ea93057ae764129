package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/planshift/planshift/internal/daemon"
	"github.com/planshift/planshift/internal/domain"
)

// client is a thin wrapper over the daemon's localhost HTTP API.
type client struct {
	base string
	http *http.Client
}

// newClient builds a client pointed at the configured API address.
func newClient() (*client, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &client{
		base: fmt.Sprintf("http://%s:%d", cfg.API.Host, cfg.API.Port),
		http: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *client) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *client) put(path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPut, c.base+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *client) post(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodPost, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		var netErr *net.OpError
		if errors.As(err, &netErr) {
			return fmt.Errorf("%w at %s (start it with 'planshift serve')", domain.ErrDaemonDown, c.base)
		}
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return errors.New(apiErr.Error.Message)
		}
		return fmt.Errorf("daemon returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// planInfo mirrors the API's plan representation.
type planInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// resolvePlan turns a user-supplied plan reference, either a UUID or a
// (case-insensitive) name, into the daemon's plan record.
func (c *client) resolvePlan(ref string) (planInfo, error) {
	var listing struct {
		Plans []planInfo `json:"plans"`
	}
	if err := c.get("/api/plans", &listing); err != nil {
		return planInfo{}, err
	}
	for _, p := range listing.Plans {
		if strings.EqualFold(p.Name, ref) || p.ID == ref {
			return p, nil
		}
	}
	return planInfo{}, fmt.Errorf("no power plan matches %q", ref)
}
