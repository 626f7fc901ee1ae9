package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/desertthunder/vidcat/internal/services"
	"github.com/desertthunder/vidcat/internal/shared"
	"github.com/urfave/cli/v3"
)

func normalizeAPIPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path, nil
}

// APIGet issues a raw GET against the backend and prints the response.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path, err := normalizeAPIPath(cmd.StringArg("path"))
	if err != nil {
		return err
	}

	if cmd.Bool("curl") {
		r.writePlainln("%s", shared.CurlCommand(http.MethodGet, r.raw.BaseURL()+path, nil, nil))
		return nil
	}

	resp, err := r.raw.Get(ctx, path)
	if err != nil {
		return err
	}
	return r.printAPIResponse(resp, cmd.Bool("pretty"))
}

// APIPut issues a raw PUT with a JSON body against the backend.
func (r *Runner) APIPut(ctx context.Context, cmd *cli.Command) error {
	path, err := normalizeAPIPath(cmd.StringArg("path"))
	if err != nil {
		return err
	}

	data := []byte(cmd.String("data"))
	if !json.Valid(data) {
		return fmt.Errorf("%w: --data must be valid JSON", shared.ErrInvalidFlag)
	}

	if cmd.Bool("curl") {
		headers := map[string]string{"Content-Type": "application/json"}
		r.writePlainln("%s", shared.CurlCommand(http.MethodPut, r.raw.BaseURL()+path, headers, data))
		return nil
	}

	resp, err := r.raw.Put(ctx, path, data)
	if err != nil {
		return err
	}
	return r.printAPIResponse(resp, true)
}

func (r *Runner) printAPIResponse(resp *services.APIResponse, pretty bool) error {
	r.logger.Debug("api response", "status", resp.StatusCode, "bytes", len(resp.Body))

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, pretty)
	}
	return r.writePlain("%s\n", resp.Body)
}
