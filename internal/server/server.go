package server

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tayeblagha/library-managememnt-demo/internal/database"
	"github.com/tayeblagha/library-managememnt-demo/internal/library"
)

const (
	BookPath    = "/book"
	MemberPath  = "/member"
	LibraryPath = "/library"
)

type ApiConfig struct {
	DB          *database.Queries
	Coordinator *library.Coordinator
}

func Handle(sm *http.ServeMux, apiCfg *ApiConfig) {
	// Books
	sm.HandleFunc("GET "+BookPath, apiCfg.HandleGetBooks)
	sm.HandleFunc("GET "+BookPath+"/{id}", apiCfg.HandleGetBookByID)
	sm.HandleFunc("POST "+BookPath, apiCfg.HandlePostBook)
	sm.HandleFunc("POST "+BookPath+"/batch", apiCfg.HandlePostBooksBatch)
	sm.HandleFunc("PUT "+BookPath+"/{id}", apiCfg.HandlePutBook)
	sm.HandleFunc("DELETE "+BookPath+"/{id}", apiCfg.HandleDeleteBook)

	// Members
	sm.HandleFunc("GET "+MemberPath, apiCfg.HandleGetMembers)
	sm.HandleFunc("GET "+MemberPath+"/active", apiCfg.HandleGetActiveMembers)
	sm.HandleFunc("GET "+MemberPath+"/{id}", apiCfg.HandleGetMemberByID)
	sm.HandleFunc("POST "+MemberPath, apiCfg.HandlePostMember)
	sm.HandleFunc("POST "+MemberPath+"/batch", apiCfg.HandlePostMembersBatch)
	sm.HandleFunc("PUT "+MemberPath+"/{id}", apiCfg.HandlePutMember)
	sm.HandleFunc("DELETE "+MemberPath+"/{id}", apiCfg.HandleDeleteMember)
	sm.HandleFunc("POST "+MemberPath+"/toggle-active/{id}", apiCfg.HandleToggleMemberActive)

	// Lending
	sm.HandleFunc("GET "+MemberPath+"/available/{memberId}", apiCfg.HandleGetAvailableBooks)
	sm.HandleFunc("GET "+MemberPath+"/borrowed/{memberId}", apiCfg.HandleGetBorrowedActivities)
	sm.HandleFunc("POST "+MemberPath+"/read/{memberId}/{bookId}", apiCfg.HandleReadBook)
	sm.HandleFunc("POST "+MemberPath+"/borrow/{memberId}/{bookId}", apiCfg.HandleBorrowBook)
	sm.HandleFunc("POST "+MemberPath+"/return/{activityId}", apiCfg.HandleReturnBook)

	// Admin
	sm.HandleFunc("GET "+LibraryPath+"/notifications", apiCfg.HandleGetNotifications)
	sm.HandleFunc("GET "+LibraryPath+"/expired", apiCfg.HandleGetExpiredActivities)
	sm.HandleFunc("POST "+LibraryPath+"/approve/{bookId}/{memberId}", apiCfg.HandleApproveNextReader)

	// Swagger
	sm.Handle("/swagger/", httpSwagger.WrapHandler)
}
