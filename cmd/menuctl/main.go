// menuctl — консольный клиент каталога меню.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/RoGogDBD/menucat/internal/models"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "menuctl",
		Usage: "drive the menu catalog service over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "base address of the menu catalog service",
				Value: "http://localhost:8080",
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			getCommand(),
			createCommand(),
			updateCommand(),
			availabilityCommand(),
			filterCommand(),
			deleteCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list all menu items",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return request(ctx, cmd, http.MethodGet, "/menu/", nil)
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "fetch a menu item by id",
		ArgsUsage: "<item_id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := itemIDArg(cmd)
			if err != nil {
				return err
			}
			return request(ctx, cmd, http.MethodGet, "/menu/"+id, nil)
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "create a menu item",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "description"},
			&cli.FloatFlag{Name: "price", Required: true},
			&cli.StringFlag{Name: "category", Required: true},
			&cli.StringFlag{Name: "cuisine"},
			&cli.FloatFlag{Name: "rating"},
			&cli.BoolFlag{Name: "unavailable", Usage: "create the item as unavailable"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			price := cmd.Float("price")
			req := models.MenuItemCreate{
				Name:        cmd.String("name"),
				Description: cmd.String("description"),
				Price:       &price,
				Category:    cmd.String("category"),
				Cuisine:     cmd.String("cuisine"),
			}
			if cmd.IsSet("rating") {
				rating := cmd.Float("rating")
				req.Rating = &rating
			}
			if cmd.Bool("unavailable") {
				available := false
				req.IsAvailable = &available
			}
			return request(ctx, cmd, http.MethodPost, "/menu/", req)
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "update the supplied fields of a menu item",
		ArgsUsage: "<item_id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "description"},
			&cli.FloatFlag{Name: "price"},
			&cli.StringFlag{Name: "category"},
			&cli.StringFlag{Name: "cuisine"},
			&cli.FloatFlag{Name: "rating"},
			&cli.BoolFlag{Name: "available"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := itemIDArg(cmd)
			if err != nil {
				return err
			}

			// В тело попадают только явно указанные флаги
			var upd models.MenuItemUpdate
			if cmd.IsSet("name") {
				v := cmd.String("name")
				upd.Name = &v
			}
			if cmd.IsSet("description") {
				v := cmd.String("description")
				upd.Description = &v
			}
			if cmd.IsSet("price") {
				v := cmd.Float("price")
				upd.Price = &v
			}
			if cmd.IsSet("category") {
				v := cmd.String("category")
				upd.Category = &v
			}
			if cmd.IsSet("cuisine") {
				v := cmd.String("cuisine")
				upd.Cuisine = &v
			}
			if cmd.IsSet("rating") {
				v := cmd.Float("rating")
				upd.Rating = &v
			}
			if cmd.IsSet("available") {
				v := cmd.Bool("available")
				upd.IsAvailable = &v
			}
			return request(ctx, cmd, http.MethodPut, "/menu/"+id, upd)
		},
	}
}

func availabilityCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-availability",
		Usage:     "toggle availability of a menu item",
		ArgsUsage: "<item_id> <true|false>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := itemIDArg(cmd)
			if err != nil {
				return err
			}
			flag, err := strconv.ParseBool(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("second argument must be true or false: %w", err)
			}
			body := models.AvailabilityUpdate{IsAvailable: &flag}
			return request(ctx, cmd, http.MethodPatch, "/menu/"+id+"/availability", body)
		},
	}
}

func filterCommand() *cli.Command {
	return &cli.Command{
		Name:      "filter",
		Usage:     "list menu items in a category",
		ArgsUsage: "<category>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			category := cmd.Args().First()
			if category == "" {
				return fmt.Errorf("category argument is required")
			}
			query := url.Values{"category": []string{category}}
			return request(ctx, cmd, http.MethodGet, "/menu/category/?"+query.Encode(), nil)
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete a menu item",
		ArgsUsage: "<item_id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := itemIDArg(cmd)
			if err != nil {
				return err
			}
			return request(ctx, cmd, http.MethodDelete, "/menu/"+id, nil)
		},
	}
}

func itemIDArg(cmd *cli.Command) (string, error) {
	raw := cmd.Args().First()
	if raw == "" {
		return "", fmt.Errorf("item_id argument is required")
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return "", fmt.Errorf("item_id must be an integer: %w", err)
	}
	return raw, nil
}

// request выполняет запрос к сервису и печатает ответ с отступами.
func request(ctx context.Context, cmd *cli.Command, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, cmd.String("addr")+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		pretty.Write(data)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: %s", resp.Status, pretty.String())
	}

	fmt.Println(pretty.String())
	return nil
}
