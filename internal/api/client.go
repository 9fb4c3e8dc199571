// Package api implements the HTTP client for the reservation backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"roomgrid/internal/schedule"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
var ErrUnauthorized = errors.New("backend rejected the token")

// Service is the slice of the backend the TUI needs. *Client implements it.
type Service interface {
	ListSchedules(ctx context.Context, roomID int64, start, end time.Time) ([]schedule.Schedule, error)
	AddSchedule(ctx context.Context, token string, req AddScheduleReq) error
	ListRooms(ctx context.Context) ([]Room, []Category, error)
	ScheduleInfo(ctx context.Context, token string, groupID int64) (*GroupInfo, error)
}

// Client talks to the reservation backend.
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time // injectable for schedule type classification
}

// NewClient creates a backend client. timeout bounds each request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// ListSchedules fetches the bookings of one room overlapping [start, end)
// and maps them to domain schedules sorted by start time. Bookings that
// already ended are classified as past, everything else as upcoming.
func (c *Client) ListSchedules(ctx context.Context, roomID int64, start, end time.Time) ([]schedule.Schedule, error) {
	q := url.Values{}
	q.Set("roomId", strconv.FormatInt(roomID, 10))
	q.Set("startTimestamp", strconv.FormatInt(start.Unix(), 10))
	q.Set("endTimestamp", strconv.FormatInt(end.Unix(), 10))

	var resp getScheduleResp
	if err := c.get(ctx, "/api/schedule/get?"+q.Encode(), "", &resp); err != nil {
		return nil, fmt.Errorf("fetching schedules: %w", err)
	}

	now := c.now()
	out := make([]schedule.Schedule, 0, len(resp.Schedules))
	for _, item := range resp.Schedules {
		entryEnd := time.Unix(item.EndTimestamp, 0).In(start.Location())
		t := schedule.TypeUpcoming
		if entryEnd.Before(now) {
			t = schedule.TypePast
		}
		out = append(out, schedule.Schedule{
			ID:      item.ID,
			GroupID: item.ScheduleGroupID,
			Name:    item.Reservee,
			Start:   time.Unix(item.StartTimestamp, 0).In(start.Location()),
			End:     entryEnd,
			Type:    t,
		})
	}
	schedule.SortByStart(out)
	return out, nil
}

// AddSchedule submits a new reservation. A bearer token is required.
func (c *Client) AddSchedule(ctx context.Context, token string, req AddScheduleReq) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/schedule/add", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("adding schedule: %w", err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// ListRooms fetches all rooms and their categories.
func (c *Client) ListRooms(ctx context.Context) ([]Room, []Category, error) {
	var resp getRoomsResp
	if err := c.get(ctx, "/api/rooms/get", "", &resp); err != nil {
		return nil, nil, fmt.Errorf("fetching rooms: %w", err)
	}
	return resp.Rooms, resp.Categories, nil
}

// ScheduleInfo fetches the reservation-group detail behind a booking.
// Only the owner and admins may read it, so a token is required.
func (c *Client) ScheduleInfo(ctx context.Context, token string, groupID int64) (*GroupInfo, error) {
	q := url.Values{}
	q.Set("scheduleGroupId", strconv.FormatInt(groupID, 10))

	var info GroupInfo
	if err := c.get(ctx, "/api/schedule/info/get?"+q.Encode(), token, &info); err != nil {
		return nil, fmt.Errorf("fetching schedule info: %w", err)
	}
	return &info, nil
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// checkStatus maps non-2xx responses to errors, reading the backend's
// error message when one is present.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var e errorResp
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Msg != "" {
		return fmt.Errorf("%s: %s", resp.Status, e.Msg)
	}
	return fmt.Errorf("unexpected status %s", resp.Status)
}
