package handler

import (
	"fmt"
	"net/http"

	"github.com/apriori/backend/pkg/json"
	pb "github.com/apriori/backend/specs/proto/sso"
)

func (h *handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := &pb.LoginReq{}
	if err := json.ParseProtoJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.sso.Login(r.Context(), req)
	if err != nil {
		json.WriteError(w, http.StatusUnauthorized, fmt.Errorf("invalid email or password"))
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}

func (h *handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	req := &pb.RegisterReq{}
	if err := json.ParseProtoJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.sso.Register(r.Context(), req)
	if err != nil {
		h.log.Warn("registration failed", "email", req.Email, "error", err)
		json.WriteError(w, http.StatusConflict, fmt.Errorf("registration failed"))
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}

func (h *handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.authorize(r)
	if err != nil {
		writeAccessDenied(w)
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, &pb.GetUserResp{User: user})
}

func (h *handler) GetOrganizationHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.authorize(r)
	if err != nil {
		writeAccessDenied(w)
		return
	}

	res, err := h.sso.GetOrganization(r.Context(), &pb.GetOrganizationReq{UserId: user.Id})
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}
