// Package main implements a small operator CLI for managing the portfolio
// catalog over the site API, for use when the back-office page is not at
// hand.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
)

const (
	apiLogin  = "/api/login"
	apiVideos = "/api/videos"
)

var (
	version   string
	buildDate string
)

// client wraps the API base URL and an authenticated HTTP client.
type client struct {
	baseURL string
	http    *http.Client
}

// login obtains an admin session cookie for subsequent mutations.
func (c *client) login(username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := c.http.Post(c.baseURL+apiLogin, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rejected: status %d", resp.StatusCode)
	}
	return nil
}

// list prints the current catalog.
func (c *client) list() error {
	resp, err := c.http.Get(c.baseURL + apiVideos)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}
	defer resp.Body.Close()

	var videos []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		URL     string `json:"url"`
		Type    string `json:"type"`
		EmbedID string `json:"embedId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		return fmt.Errorf("decode listing: %w", err)
	}

	if len(videos) == 0 {
		fmt.Println("catalog is empty")
		return nil
	}
	for _, v := range videos {
		embed := v.EmbedID
		if embed == "" {
			embed = "-"
		}
		fmt.Printf("%s  [%s]  %s\n    url: %s  embed: %s\n", v.ID, v.Type, v.Title, v.URL, embed)
	}
	return nil
}

// add creates a new catalog entry.
func (c *client) add(title, description, url, videoType string) error {
	body, _ := json.Marshal(map[string]string{
		"title":       title,
		"description": description,
		"url":         url,
		"type":        videoType,
	})
	resp, err := c.http.Post(c.baseURL+apiVideos, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("add rejected: status %d", resp.StatusCode)
	}

	var entry struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return fmt.Errorf("decode entry: %w", err)
	}
	fmt.Println("added", entry.ID)
	return nil
}

// remove deletes a catalog entry by id.
func (c *client) remove(id string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+apiVideos+"/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("remove rejected: status %d", resp.StatusCode)
	}
	fmt.Println("removed", id)
	return nil
}

// main parses command-line flags and dispatches to the list, add or
// remove commands.
func main() {
	var (
		cmd       string
		baseURL   string
		username  string
		password  string
		title     string
		desc      string
		videoURL  string
		videoType string
		id        string
		showVer   bool
	)

	flag.StringVar(&cmd, "cmd", "list", "command: list | add | remove")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&username, "user", "", "admin username (required for add/remove)")
	flag.StringVar(&password, "password", "", "admin password (required for add/remove)")
	flag.StringVar(&title, "title", "", "video title")
	flag.StringVar(&desc, "desc", "", "video description")
	flag.StringVar(&videoURL, "video", "", "video URL")
	flag.StringVar(&videoType, "type", "wedding", "event type: wedding | birthday | anniversary | corporate | other")
	flag.StringVar(&id, "id", "", "video id for remove")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Catalog Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatal(err)
	}
	c := &client{baseURL: baseURL, http: &http.Client{Jar: jar}}

	// Mutations need an admin session first.
	if cmd == "add" || cmd == "remove" {
		if username == "" || password == "" {
			log.Fatal("please provide -user and -password")
		}
		if err := c.login(username, password); err != nil {
			log.Fatal(err)
		}
	}

	switch cmd {
	case "list":
		err = c.list()
	case "add":
		if title == "" || videoURL == "" {
			log.Fatal("please provide -title and -video")
		}
		err = c.add(title, desc, videoURL, videoType)
	case "remove":
		if id == "" {
			log.Fatal("please provide -id")
		}
		err = c.remove(id)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
