package routes

import (
	"assettrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRooms   = "/rooms"
	PathAssets  = "/assets"
	PathReports = "/reports"
)

func addInventoryRoutes(rg *gin.RouterGroup, roomHandler *handlers.RoomHandler, assetHandler *handlers.AssetHandler, suggestionHandler *handlers.SuggestionHandler, reportHandler *handlers.ReportHandler) {
	rooms := rg.Group(PathRooms)
	{
		rooms.GET("", roomHandler.ListRooms)
		rooms.POST("", roomHandler.CreateRoom)
		rooms.GET("/:room_id", roomHandler.GetRoom)
		rooms.PUT("/:room_id", roomHandler.UpdateRoom)
		rooms.DELETE("/:room_id", roomHandler.DeleteRoom)
		rooms.GET("/:room_id/assets", assetHandler.ListRoomAssets)
		rooms.POST("/:room_id/assets", assetHandler.AllocateAssets)
	}

	assets := rg.Group(PathAssets)
	{
		assets.GET("/:asset_id", assetHandler.GetAsset)
		assets.PATCH("/:asset_id/status", assetHandler.UpdateAssetStatus)
		assets.PATCH("/:asset_id/move", assetHandler.MoveAsset)
		assets.GET("/:asset_id/qr", assetHandler.AssetQRLabel)
		assets.POST("/:asset_id/suggest-status", suggestionHandler.SuggestAssetStatus)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("", reportHandler.GetReport)
		reports.GET("/export", reportHandler.ExportReport)
	}
}
