package http

import (
	"net/http"

	"github.com/matryer/way"

	"github.com/nakamauwu/hanghub/catalog"
	"github.com/nakamauwu/hanghub/types"
)

type createRoomRespBody struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RoomCode string `json:"roomCode"`
	RoomID   string `json:"roomId"`
}

type joinRoomRespBody struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Participant types.Participant `json:"participant"`
}

type roomRespBody struct {
	Success bool       `json:"success"`
	Room    types.Room `json:"room"`
}

type roomStatsRespBody struct {
	Success bool            `json:"success"`
	Stats   types.RoomStats `json:"stats"`
}

type activitiesRespBody struct {
	Success    bool               `json:"success"`
	Activities []catalog.Activity `json:"activities"`
}

func (h *handler) activities(w http.ResponseWriter, r *http.Request) {
	h.respond(w, activitiesRespBody{
		Success:    true,
		Activities: h.svc.Activities(),
	}, http.StatusOK)
}

func (h *handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var in types.CreateRoom
	if err := h.decode(w, r, &in); err != nil {
		h.respondErr(w, r, err)
		return
	}

	out, err := h.svc.CreateRoom(r.Context(), in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, createRoomRespBody{
		Success:  true,
		Message:  "Room created successfully",
		RoomCode: out.Code,
		RoomID:   out.ID,
	}, http.StatusCreated)
}

func (h *handler) joinRoom(w http.ResponseWriter, r *http.Request) {
	var in types.JoinRoom
	if err := h.decode(w, r, &in); err != nil {
		h.respondErr(w, r, err)
		return
	}

	ctx := r.Context()
	in.RoomCode = way.Param(ctx, "code")
	out, err := h.svc.JoinRoom(ctx, in)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if out.SwipedActivities == nil {
		out.SwipedActivities = []string{} // non null array
	}
	if out.LikedActivities == nil {
		out.LikedActivities = []string{} // non null array
	}

	h.respond(w, joinRoomRespBody{
		Success:     true,
		Message:     "Successfully joined room",
		Participant: out,
	}, http.StatusCreated)
}

func (h *handler) room(w http.ResponseWriter, r *http.Request) {
	if wantsEventStream(r) {
		h.roomStream(w, r)
		return
	}

	ctx := r.Context()
	room, err := h.svc.Room(ctx, way.Param(ctx, "code"))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	room.EnsureArrays()

	h.respond(w, roomRespBody{Success: true, Room: room}, http.StatusOK)
}

func (h *handler) roomStream(w http.ResponseWriter, r *http.Request) {
	f, ok := w.(http.Flusher)
	if !ok {
		h.respondErr(w, r, errStreamingUnsupported)
		return
	}

	ctx := r.Context()
	rr, err := h.svc.RoomStream(ctx, way.Param(ctx, "code"))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	header := w.Header()
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("Content-Type", "text/event-stream; charset=utf-8")

	for {
		select {
		case room, ok := <-rr:
			if !ok {
				return
			}

			room.EnsureArrays()

			h.writeSSE(w, room)
			f.Flush()
		case <-ctx.Done():
			return
		}
	}
}

func (h *handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var in types.UpdatePreferences
	if err := h.decode(w, r, &in); err != nil {
		h.respondErr(w, r, err)
		return
	}

	ctx := r.Context()
	in.RoomCode = way.Param(ctx, "code")
	in.ParticipantID = way.Param(ctx, "participant_id")
	if err := h.svc.UpdatePreferences(ctx, in); err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, successRespBody{
		Success: true,
		Message: "Preferences updated successfully",
	}, http.StatusOK)
}

func (h *handler) submitSwipes(w http.ResponseWriter, r *http.Request) {
	var in types.SubmitSwipes
	if err := h.decode(w, r, &in); err != nil {
		h.respondErr(w, r, err)
		return
	}

	ctx := r.Context()
	in.RoomCode = way.Param(ctx, "code")
	in.ParticipantID = way.Param(ctx, "participant_id")
	if err := h.svc.SubmitSwipes(ctx, in); err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, successRespBody{
		Success: true,
		Message: "Swipes submitted successfully",
	}, http.StatusOK)
}

func (h *handler) roomStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.svc.RoomStats(ctx, way.Param(ctx, "code"))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	h.respond(w, roomStatsRespBody{Success: true, Stats: stats}, http.StatusOK)
}
