package http

import (
	"net/http"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateSeasonBlock(w http.ResponseWriter, r *http.Request) {
	block, ok := h.seasonBlockFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.Seasons.CreateBlock(block); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSeasonBlockResponse(block))
}

func (h *Handler) UpdateSeasonBlock(w http.ResponseWriter, r *http.Request) {
	block, ok := h.seasonBlockFromRequest(w, r)
	if !ok {
		return
	}
	block.ID = chi.URLParam(r, "blockID")

	if err := h.Seasons.UpdateBlock(block); err != nil {
		writeDomainError(w, err)
		return
	}

	updated, err := h.Seasons.GetBlock(block.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSeasonBlockResponse(updated))
}

func (h *Handler) DeleteSeasonBlock(w http.ResponseWriter, r *http.Request) {
	if err := h.Seasons.DeleteBlock(chi.URLParam(r, "blockID")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) GetSeasonBlock(w http.ResponseWriter, r *http.Request) {
	block, err := h.Seasons.GetBlock(chi.URLParam(r, "blockID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSeasonBlockResponse(block))
}

func (h *Handler) ListSeasonBlocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.Seasons.ListBlocks(chi.URLParam(r, "hotelID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := make([]seasonBlockResponse, len(blocks))
	for i, block := range blocks {
		resp[i] = toSeasonBlockResponse(block)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ConfirmSeasonBlock(w http.ResponseWriter, r *http.Request) {
	block, err := h.Seasons.ConfirmBlock(chi.URLParam(r, "blockID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSeasonBlockResponse(block))
}

func (h *Handler) DemoteSeasonBlock(w http.ResponseWriter, r *http.Request) {
	if err := h.Seasons.DemoteBlock(chi.URLParam(r, "blockID")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) seasonBlockFromRequest(w http.ResponseWriter, r *http.Request) (*domain.SeasonBlock, bool) {
	var req seasonBlockRequest
	if !decodeAndValidate(w, r, &req) {
		return nil, false
	}
	startDay, ok := parseDayParam(w, "start_day", req.StartDay)
	if !ok {
		return nil, false
	}
	endDay, ok := parseDayParam(w, "end_day", req.EndDay)
	if !ok {
		return nil, false
	}
	if endDay.Before(startDay) {
		writeError(w, http.StatusBadRequest, "end_day must not be before start_day")
		return nil, false
	}

	prices := make([]domain.SeasonRoomPrice, len(req.RoomPrices))
	for i, p := range req.RoomPrices {
		prices[i] = domain.SeasonRoomPrice{RoomTypeID: p.RoomTypeID, BaseRate: p.BaseRate}
	}
	adjustments := make([]domain.SeasonServiceAdjustment, len(req.ServiceAdjustments))
	for i, a := range req.ServiceAdjustments {
		adjustments[i] = domain.SeasonServiceAdjustment{
			ServiceTypeID: a.ServiceTypeID,
			Mode:          domain.AdjustMode(a.Mode),
			Value:         a.Value,
			Enabled:       a.Enabled,
		}
	}

	return &domain.SeasonBlock{
		HotelID:            req.HotelID,
		Name:               req.Name,
		StartDay:           startDay,
		EndDay:             endDay,
		RoomPrices:         prices,
		ServiceAdjustments: adjustments,
	}, true
}
