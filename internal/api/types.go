package api

// Wire types for the reservation backend. Timestamps are epoch seconds.

// ScheduleItem is one booking row as returned by /api/schedule/get.
type ScheduleItem struct {
	ID              int64  `json:"id"`
	ScheduleGroupID int64  `json:"scheduleGroupId"`
	Reservee        string `json:"reservee"`
	StartTimestamp  int64  `json:"startTimestamp"`
	EndTimestamp    int64  `json:"endTimestamp"`
}

type getScheduleResp struct {
	Schedules []ScheduleItem `json:"schedules"`
}

// AddScheduleReq is the body of /api/schedule/add.
type AddScheduleReq struct {
	RoomID         int64  `json:"roomId"`
	Reservee       string `json:"reservee"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Reason         string `json:"reason"`
	Repeats        int    `json:"repeats"`
	StartTimestamp int64  `json:"startTimestamp"`
	EndTimestamp   int64  `json:"endTimestamp"`
}

// Room is one reservable room. CategoryID -1 means uncategorized.
type Room struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Seats      int    `json:"seats"`
	CategoryID int64  `json:"categoryId"`
}

// Category groups rooms in the listing.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type getRoomsResp struct {
	Rooms      []Room     `json:"rooms"`
	Categories []Category `json:"categories"`
}

// GroupInfo is the reservation-group detail behind a booked block.
type GroupInfo struct {
	ID          int64  `json:"id"`
	RoomID      int64  `json:"roomId"`
	Reservee    string `json:"reservee"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Reason      string `json:"reason"`
}

type errorResp struct {
	Msg string `json:"msg"`
}
