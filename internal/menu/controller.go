package menu

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"katering/internal/api"
	"katering/internal/domain"
	"katering/internal/dto"
	apperrors "katering/internal/errors"
)

type MenuRepository interface {
	FindAvailable(ctx context.Context) ([]domain.Menu, error)
	FindByID(ctx context.Context, id uint) (*domain.Menu, error)
	Insert(ctx context.Context, m domain.Menu) (uint, error)
	Update(ctx context.Context, m domain.Menu) error
	Delete(ctx context.Context, id uint) error
}

type Controller struct {
	repo     MenuRepository
	uploader *Uploader
	logger   *zap.Logger
}

func NewController(repo MenuRepository, uploader *Uploader, logger *zap.Logger) *Controller {
	return &Controller{
		repo:     repo,
		uploader: uploader,
		logger:   logger,
	}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := c.repo.FindAvailable(r.Context())
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, dto.MenuListResponse{Menu: mapMenus(entries)})
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	m, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, mapMenu(*m))
}

// HandleCreate accepts a multipart form; the photo part is optional. A failed
// database write removes the already-stored file so the upload directory
// never accumulates orphans.
func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	form, err := c.parseMenuForm(r)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	m := domain.Menu{
		NamaMenu:  form.namaMenu,
		Deskripsi: form.deskripsi,
		Harga:     form.harga,
		Kategori:  form.kategori,
		Status:    form.status,
	}

	filename, err := c.savePhotoIfPresent(r)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}
	if filename != "" {
		url := c.uploader.URL(filename)
		m.FotoURL = &url
		m.FotoFilename = &filename
	}

	id, err := c.repo.Insert(r.Context(), m)
	if err != nil {
		if filename != "" {
			if rmErr := c.uploader.Remove(filename); rmErr != nil {
				c.logger.Warn("failed to remove orphaned upload", zap.String("filename", filename), zap.Error(rmErr))
			}
		}
		api.WriteError(w, c.logger, err)
		return
	}
	m.ID = id

	api.WriteJSON(w, c.logger, http.StatusCreated, dto.MenuResponse{
		Message: "Menu berhasil ditambahkan",
		Menu:    mapMenu(m),
	})
}

// HandleUpdate distinguishes three photo cases: a new file replaces the old
// one, the hapus_foto flag clears it, and otherwise the current photo stays.
func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	existing, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	form, err := c.parseMenuForm(r)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	m := *existing
	m.NamaMenu = form.namaMenu
	m.Deskripsi = form.deskripsi
	m.Harga = form.harga
	m.Kategori = form.kategori
	m.Status = form.status

	oldFilename := ""
	if existing.FotoFilename != nil {
		oldFilename = *existing.FotoFilename
	}

	newFilename, err := c.savePhotoIfPresent(r)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	switch {
	case newFilename != "":
		url := c.uploader.URL(newFilename)
		m.FotoURL = &url
		m.FotoFilename = &newFilename
	case r.FormValue("hapus_foto") == "true":
		m.FotoURL = nil
		m.FotoFilename = nil
	}

	if err := c.repo.Update(r.Context(), m); err != nil {
		if newFilename != "" {
			if rmErr := c.uploader.Remove(newFilename); rmErr != nil {
				c.logger.Warn("failed to remove orphaned upload", zap.String("filename", newFilename), zap.Error(rmErr))
			}
		}
		api.WriteError(w, c.logger, err)
		return
	}

	// old photo is deleted only after the row is safely updated
	replaced := newFilename != "" || r.FormValue("hapus_foto") == "true"
	if replaced && oldFilename != "" && oldFilename != newFilename {
		if rmErr := c.uploader.Remove(oldFilename); rmErr != nil {
			c.logger.Warn("failed to remove replaced photo", zap.String("filename", oldFilename), zap.Error(rmErr))
		}
	}

	api.WriteJSON(w, c.logger, http.StatusOK, dto.MenuResponse{
		Message: "Menu berhasil diubah",
		Menu:    mapMenu(m),
	})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	existing, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	if existing.FotoFilename != nil {
		if rmErr := c.uploader.Remove(*existing.FotoFilename); rmErr != nil {
			c.logger.Warn("failed to remove photo of deleted menu", zap.String("filename", *existing.FotoFilename), zap.Error(rmErr))
		}
	}

	api.WriteJSON(w, c.logger, http.StatusOK, api.MessageResponse{Message: "Menu berhasil dihapus"})
}

type menuForm struct {
	namaMenu  string
	deskripsi string
	harga     int64
	kategori  string
	status    domain.MenuStatus
}

func (c *Controller) parseMenuForm(r *http.Request) (*menuForm, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, apperrors.NewValidationError("invalid form data", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be multipart form data",
		})
	}

	var details []apperrors.ValidationDetail

	namaMenu := r.FormValue("nama_menu")
	if namaMenu == "" {
		details = append(details, apperrors.ValidationDetail{Field: "nama_menu", Message: "nama_menu is required"})
	}

	kategori := r.FormValue("kategori")
	if kategori == "" {
		details = append(details, apperrors.ValidationDetail{Field: "kategori", Message: "kategori is required"})
	}

	harga, err := strconv.ParseInt(r.FormValue("harga"), 10, 64)
	if err != nil || harga <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "harga", Message: "harga must be a positive integer"})
	}

	status := domain.MenuStatus(r.FormValue("status"))
	if status == "" {
		status = domain.MenuTersedia
	}
	if status != domain.MenuTersedia && status != domain.MenuHabis {
		details = append(details, apperrors.ValidationDetail{Field: "status", Message: "status must be tersedia or habis"})
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	return &menuForm{
		namaMenu:  namaMenu,
		deskripsi: r.FormValue("deskripsi"),
		harga:     harga,
		kategori:  kategori,
		status:    status,
	}, nil
}

func (c *Controller) savePhotoIfPresent(r *http.Request) (string, error) {
	file, header, err := r.FormFile("foto")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", apperrors.NewValidationError("invalid photo upload", apperrors.ValidationDetail{
			Field:   "foto",
			Message: "photo part could not be read",
		})
	}
	defer file.Close()

	return c.uploader.Save(file, header)
}

func pathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return uint(id), nil
}

func mapMenus(entries []domain.Menu) []dto.MenuDTO {
	return lo.Map(entries, func(m domain.Menu, _ int) dto.MenuDTO {
		return mapMenu(m)
	})
}

func mapMenu(m domain.Menu) dto.MenuDTO {
	return dto.MenuDTO{
		ID:        m.ID,
		NamaMenu:  m.NamaMenu,
		Deskripsi: m.Deskripsi,
		Harga:     m.Harga,
		Kategori:  m.Kategori,
		FotoURL:   m.FotoURL,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
