package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/session"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: clubctl [login|logout|whoami|board|join|cancel|mine] [flags]")
		os.Exit(1)
	}

	addr := os.Getenv("CLUBCTL_ADDR")
	if addr == "" {
		addr = "http://localhost:8080"
	}

	manager := session.NewManager(session.NewFileStore(sessionPath()))
	client := &apiClient{
		base:    addr,
		http:    &http.Client{Timeout: 10 * time.Second},
		manager: manager,
	}

	cmd := os.Args[1]
	args := os.Args[2:]
	switch cmd {
	case "login":
		loginCmd(client, args)
	case "logout":
		logoutCmd(client)
	case "whoami":
		whoamiCmd(client)
	case "board":
		boardCmd(client, args)
	case "join":
		joinCmd(client, args)
	case "cancel":
		cancelCmd(client, args)
	case "mine":
		mineCmd(client)
	default:
		fmt.Println("unknown command:", cmd)
		os.Exit(1)
	}
}

func sessionPath() string {
	if p := os.Getenv("CLUBCTL_SESSION"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clubctl-session.json"
	}
	return filepath.Join(home, ".config", "clubctl", "session.json")
}

// apiClient talks to the reservation backend. Responses with an error body
// are translated to display text through the shared code table.
type apiClient struct {
	base    string
	http    *http.Client
	manager *session.Manager
}

func (c *apiClient) token() string {
	sess, err := c.manager.Current()
	if err != nil || sess == nil {
		return ""
	}
	return sess.AccessToken
}

func (c *apiClient) do(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.base+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("%s", errcode.Resolve(apiErr.Code, apiErr.Message, resp.StatusCode))
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func loginCmd(c *apiClient, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "member username")
	password := fs.String("password", "", "member password")
	_ = fs.Parse(args)

	if *username == "" || *password == "" {
		log.Fatal("username and password are required")
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		Member      struct {
			Username    string `json:"username"`
			Name        string `json:"name"`
			AccountType string `json:"account_type"`
		} `json:"member"`
	}
	err := c.do(http.MethodPost, "/v1/auth/login", map[string]string{
		"username": *username,
		"password": *password,
	}, &resp)
	if err != nil {
		log.Fatal(err)
	}

	err = c.manager.SignIn(session.Session{
		AccessToken: resp.AccessToken,
		Username:    resp.Member.Username,
		Name:        resp.Member.Name,
		AccountType: resp.Member.AccountType,
	})
	if err != nil {
		log.Fatalf("failed to store session: %v", err)
	}

	fmt.Printf("signed in as %s (%s)\n", resp.Member.Username, resp.Member.AccountType)
}

func logoutCmd(c *apiClient) {
	if err := c.manager.SignOut(); err != nil {
		log.Fatalf("failed to clear session: %v", err)
	}
	fmt.Println("signed out")
}

func whoamiCmd(c *apiClient) {
	sess, err := c.manager.Current()
	if err != nil {
		log.Fatal(err)
	}
	if sess == nil {
		fmt.Println("not signed in")
		return
	}

	fmt.Printf("%s (%s)\n", sess.Username, sess.AccountType)
	if exp, ok := auth.TokenExpiry(sess.AccessToken); ok {
		fmt.Printf("token expires %s\n", time.Unix(exp, 0).Local().Format(time.RFC1123))
	}
}

func boardCmd(c *apiClient, args []string) {
	fs := flag.NewFlagSet("board", flag.ExitOnError)
	venue := fs.String("venue", "", "venue id")
	date := fs.String("date", "", "game date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *venue == "" || *date == "" {
		log.Fatal("venue and date are required")
	}

	var resp struct {
		Cells []struct {
			CourtID   string `json:"court_id"`
			TimeSlot  string `json:"time_slot"`
			Status    string `json:"status"`
			Confirmed int    `json:"confirmed"`
			Waiting   int    `json:"waiting"`
			Capacity  int    `json:"capacity"`
			Mine      bool   `json:"mine"`
		} `json:"cells"`
	}
	query := url.Values{"venue_id": {*venue}, "date": {*date}}
	if err := c.do(http.MethodGet, "/v1/board?"+query.Encode(), nil, &resp); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("board for %s:\n", *date)
	for _, cell := range resp.Cells {
		marker := ""
		if cell.Mine {
			marker = " *"
		}
		fmt.Printf("  %s %s  %s  %d/%d confirmed, %d waiting%s\n",
			cell.CourtID, cell.TimeSlot, cell.Status, cell.Confirmed, cell.Capacity, cell.Waiting, marker)
	}
}

func joinCmd(c *apiClient, args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	courtID := fs.String("court", "", "court id")
	date := fs.String("date", "", "game date (YYYY-MM-DD)")
	slot := fs.String("slot", "", "time slot (HH:MM~HH:MM)")
	_ = fs.Parse(args)

	if *courtID == "" || *date == "" || *slot == "" {
		log.Fatal("court, date and slot are required")
	}

	var resp struct {
		CourtName string `json:"court_name"`
		Players   []struct {
			Username string `json:"username"`
			Position int    `json:"position"`
		} `json:"players"`
	}
	err := c.do(http.MethodPost, "/v1/reservations", map[string]string{
		"court_id":  *courtID,
		"game_date": *date,
		"time_slot": *slot,
	}, &resp)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("joined %s %s %s (%d on roster)\n",
		resp.CourtName, *date, *slot, len(resp.Players))
}

func cancelCmd(c *apiClient, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	courtID := fs.String("court", "", "court id")
	date := fs.String("date", "", "game date (YYYY-MM-DD)")
	slot := fs.String("slot", "", "time slot (HH:MM~HH:MM)")
	_ = fs.Parse(args)

	if *courtID == "" || *date == "" || *slot == "" {
		log.Fatal("court, date and slot are required")
	}

	query := url.Values{"court_id": {*courtID}, "game_date": {*date}, "time_slot": {*slot}}
	if err := c.do(http.MethodDelete, "/v1/reservations?"+query.Encode(), nil, nil); err != nil {
		log.Fatal(err)
	}

	fmt.Println("reservation cancelled")
}

func mineCmd(c *apiClient) {
	var resp struct {
		Items []struct {
			CourtName string `json:"court_name"`
			GameDate  string `json:"game_date"`
			TimeSlot  string `json:"time_slot"`
			Players   []struct {
				Username string `json:"username"`
			} `json:"players"`
		} `json:"items"`
	}
	if err := c.do(http.MethodGet, "/v1/reservations/mine", nil, &resp); err != nil {
		log.Fatal(err)
	}

	if len(resp.Items) == 0 {
		fmt.Println("no upcoming reservations")
		return
	}
	for _, r := range resp.Items {
		fmt.Printf("  %s  %s %s  (%d players)\n", r.GameDate, r.TimeSlot, r.CourtName, len(r.Players))
	}
}
